package fidelity

import (
	"fmt"

	"qfock/maths"
)

// Modes 推断门幺正矩阵作用的模式数
// 行数必须是cutoff的整数次幂：逐个尝试 m=1,2,... 直到 cutoff^m == rows，
// 避免浮点对数在整数边界附近的舍入问题。
// 参数:
//
//	u      - 待分析的幺正矩阵，形状 [cutoff^m, *]
//	cutoff - 仿真Fock基截断
//
// 返回:
//
//	模式数m，错误信息（行数不是cutoff的整数次幂时ErrInvalidDimensions）
func Modes(u maths.Matrix, cutoff int) (int, error) {
	if cutoff < 2 {
		return 0, fmt.Errorf("%w: cutoff must be at least 2, got %d", ErrInvalidParameter, cutoff)
	}
	rows := u.Rows()
	pow := 1
	for m := 1; ; m++ {
		pow *= cutoff
		if pow == rows {
			return m, nil
		}
		if pow > rows {
			return 0, fmt.Errorf("%w: %d rows is not an integer power of cutoff %d", ErrInvalidDimensions, rows, cutoff)
		}
	}
}

// Truncation 由学习所得幺正矩阵的列数推断门截断d（d^m == 列数）
func Truncation(u maths.Matrix, m int) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: mode count must be positive, got %d", ErrInvalidParameter, m)
	}
	return gateTruncation(u.Cols(), m)
}

// gateTruncation 由学习所得幺正矩阵的列数推断门截断d（d^m == cols）
func gateTruncation(cols, m int) (int, error) {
	for d := 1; ; d++ {
		if p := intPow(d, m); p == cols {
			return d, nil
		} else if p > cols {
			return 0, fmt.Errorf("%w: %d columns is not a perfect %d-th power", ErrInvalidDimensions, cols, m)
		}
	}
}

// modePair 保真度函数的公共前置：推断模式数与门截断并检查形状
// 模式数限制在{1, 2}（张量重排逻辑仅特化了这两种情况）。
func modePair(v, u maths.Matrix, cutoff int) (m, d int, err error) {
	m, err = Modes(v, cutoff)
	if err != nil {
		return 0, 0, err
	}
	if m != 1 && m != 2 {
		return 0, 0, fmt.Errorf("%w: got %d modes, only 1 and 2 are supported", ErrUnsupportedModeCount, m)
	}
	if u.Rows() != v.Rows() {
		return 0, 0, fmt.Errorf("%w: target has %d rows, learnt unitary has %d", ErrInvalidDimensions, v.Rows(), u.Rows())
	}
	d, err = gateTruncation(u.Cols(), m)
	if err != nil {
		return 0, 0, err
	}
	// 门截断不能超过仿真截断（d ≤ cutoff），否则后续切片越界
	if d > cutoff {
		return 0, 0, fmt.Errorf("%w: gate truncation %d exceeds cutoff %d", ErrInvalidDimensions, d, cutoff)
	}
	return m, d, nil
}

// intPow 整数幂 base^exp（exp非负）
func intPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
