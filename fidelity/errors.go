// Package fidelity 分析截断Fock基幺正矩阵：模式数推断、最小截断搜索，
// 以及目标幺正矩阵与学习所得幺正矩阵之间的三种保真度度量。
package fidelity

import "errors"

var (
	// ErrInvalidDimensions 矩阵形状与声明的截断/模式假设不一致
	ErrInvalidDimensions = errors.New("matrix shape inconsistent with cutoff")
	// ErrUnsupportedModeCount 模式数超出支持范围{1,2}
	ErrUnsupportedModeCount = errors.New("unsupported mode count")
	// ErrInvalidParameter 调用参数非法（精度越界、截断关系颠倒、样本数非正）
	ErrInvalidParameter = errors.New("invalid parameter")
)
