package maths

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestDenseVectorDotProduct(t *testing.T) {
	// 内积必须对第一个向量取共轭
	v := NewDenseVectorWithData([]complex128{complex(0, 1), 2})
	w := NewDenseVectorWithData([]complex128{complex(0, 1), 1})

	got := v.DotProduct(w)
	want := complex128(3) // conj(i)*i + conj(2)*1 = 1 + 2
	if cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("内积希望得到 %v, 得到 %v", want, got)
	}
}

func TestDenseVectorNorm(t *testing.T) {
	v := NewDenseVectorWithData([]complex128{complex(3, 0), complex(0, 4)})
	if got := v.Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("范数希望得到 5, 得到 %v", got)
	}
}

func TestDenseVectorScaleAdd(t *testing.T) {
	v := NewDenseVectorWithData([]complex128{1, 2})
	w := NewDenseVectorWithData([]complex128{complex(0, 1), 1})

	v.Scale(2)
	v.Add(w)

	want := []complex128{complex(2, 1), 5}
	for i, x := range v.ToDense() {
		if cmplx.Abs(x-want[i]) > 1e-12 {
			t.Errorf("元素 %d 希望得到 %v, 得到 %v", i, want[i], x)
		}
	}
}

func TestDenseVectorCopyAndZero(t *testing.T) {
	v := NewDenseVectorWithData([]complex128{1, complex(0, 2), 3})
	w := NewDenseVector(3)
	v.Copy(w)

	if w.NonZeroCount() != 3 {
		t.Fatalf("复制后希望有3个非零元素, 得到 %d", w.NonZeroCount())
	}
	v.Zero()
	if v.NonZeroCount() != 0 {
		t.Errorf("清空后希望有0个非零元素, 得到 %d", v.NonZeroCount())
	}
	// 复制目标不受源清空影响
	if w.Get(1) != complex(0, 2) {
		t.Errorf("复制目标元素被意外修改: %v", w.Get(1))
	}
}
