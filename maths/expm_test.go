package maths

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestExpmZero(t *testing.T) {
	// e^0 = I
	got, err := Expm(NewDenseMatrix(3, 3))
	if err != nil {
		t.Fatalf("矩阵指数计算失败: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(got.Get(i, j)-want) > 1e-12 {
				t.Errorf("e^0 元素 (%d,%d) 希望得到 %v, 得到 %v", i, j, want, got.Get(i, j))
			}
		}
	}
}

func TestExpmDiagonal(t *testing.T) {
	// 对角矩阵的指数为逐元素指数
	a := NewDenseMatrix(2, 2)
	a.Set(0, 0, complex(0, 1))
	a.Set(1, 1, complex(-0.5, 2))

	got, err := Expm(a)
	if err != nil {
		t.Fatalf("矩阵指数计算失败: %v", err)
	}
	for i := 0; i < 2; i++ {
		want := cmplx.Exp(a.Get(i, i))
		if cmplx.Abs(got.Get(i, i)-want) > 1e-10 {
			t.Errorf("对角元素 %d 希望得到 %v, 得到 %v", i, want, got.Get(i, i))
		}
	}
	if cmplx.Abs(got.Get(0, 1)) > 1e-10 {
		t.Errorf("非对角元素希望为 0, 得到 %v", got.Get(0, 1))
	}
}

func TestExpmRotation(t *testing.T) {
	// 旋转生成元 [[0,-θ],[θ,0]] 的指数为旋转矩阵
	theta := 12.3 // 超出Padé收敛域，同时检验标度平方
	a := NewDenseMatrix(2, 2)
	a.Set(0, 1, complex(-theta, 0))
	a.Set(1, 0, complex(theta, 0))

	got, err := Expm(a)
	if err != nil {
		t.Fatalf("矩阵指数计算失败: %v", err)
	}
	c, s := math.Cos(theta), math.Sin(theta)
	want := [2][2]float64{{c, -s}, {s, c}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(got.Get(i, j)-complex(want[i][j], 0)) > 1e-9 {
				t.Errorf("旋转矩阵元素 (%d,%d) 希望得到 %v, 得到 %v", i, j, want[i][j], got.Get(i, j))
			}
		}
	}
}

func TestExpmSkewHermitianIsUnitary(t *testing.T) {
	// e^{iH}（H厄米）必须幺正
	h := NewDenseMatrixWithData(3, 3, []complex128{
		complex(1, 0), complex(0.5, 0.3), complex(0, -0.2),
		complex(0.5, -0.3), complex(-2, 0), complex(0.1, 0),
		complex(0, 0.2), complex(0.1, 0), complex(0.5, 0),
	})
	ih := NewDenseMatrix(3, 3)
	h.Copy(ih)
	ih.Scale(complex(0, 1))

	u, err := Expm(ih)
	if err != nil {
		t.Fatalf("矩阵指数计算失败: %v", err)
	}
	product := u.ConjugateTranspose().MatrixMultiply(u)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(product.Get(i, j)-want) > 1e-10 {
				t.Errorf("U†U 元素 (%d,%d) 偏离单位矩阵: %v", i, j, product.Get(i, j))
			}
		}
	}
}

func TestExpmNotSquare(t *testing.T) {
	if _, err := Expm(NewDenseMatrix(2, 3)); err == nil {
		t.Error("非方阵希望返回错误, 得到 nil")
	}
}
