package fidelity

import (
	"errors"
	"testing"

	"qfock/maths"
)

func TestModes(t *testing.T) {
	const cutoff = 10

	// 单模: [c, c]
	if m, err := Modes(maths.NewDenseMatrix(10, 10), cutoff); err != nil || m != 1 {
		t.Errorf("单模矩阵希望得到 m=1, 得到 m=%d, err=%v", m, err)
	}
	// 双模: [c², c²]
	if m, err := Modes(maths.NewDenseMatrix(100, 100), cutoff); err != nil || m != 2 {
		t.Errorf("双模矩阵希望得到 m=2, 得到 m=%d, err=%v", m, err)
	}
	// 三模: [c³, c³]
	if m, err := Modes(maths.NewDenseMatrix(1000, 1000), cutoff); err != nil || m != 3 {
		t.Errorf("三模矩阵希望得到 m=3, 得到 m=%d, err=%v", m, err)
	}
}

func TestModesInvalidDimensions(t *testing.T) {
	// 行数不是截断的整数次幂
	_, err := Modes(maths.NewDenseMatrix(12, 12), 10)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("非法行数希望得到 ErrInvalidDimensions, 得到 %v", err)
	}
}

func TestModesInvalidCutoff(t *testing.T) {
	_, err := Modes(maths.NewDenseMatrix(10, 10), 1)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("截断为1希望得到 ErrInvalidParameter, 得到 %v", err)
	}
}

func TestTruncation(t *testing.T) {
	// 单模: 列数即门截断
	if d, err := Truncation(maths.NewDenseMatrix(10, 4), 1); err != nil || d != 4 {
		t.Errorf("单模希望得到 d=4, 得到 d=%d, err=%v", d, err)
	}
	// 双模: 列数为门截断的平方
	if d, err := Truncation(maths.NewDenseMatrix(100, 9), 2); err != nil || d != 3 {
		t.Errorf("双模希望得到 d=3, 得到 d=%d, err=%v", d, err)
	}
	// 列数不是完全平方数
	if _, err := Truncation(maths.NewDenseMatrix(100, 8), 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("非法列数希望得到 ErrInvalidDimensions, 得到 %v", err)
	}
}
