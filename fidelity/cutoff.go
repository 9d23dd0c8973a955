package fidelity

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"qfock/maths"
)

// MinCutoff 搜索保持幺正性的最小仿真截断
// 从cutoff到gateCutoff+1逐个缩小截断维度n，检查截断到n^m行后
// 前gateCutoff^m列的列范数偏离1的最大值eps；首个eps超过精度p的n
// 说明该截断已丢失显著概率幅，返回n+1（最后一个确认安全的值再加一）。
// 扫描全程未超限时返回gateCutoff+1。
// 参数:
//
//	u          - 待分析的幺正矩阵，形状 [cutoff^m, cutoff^m]
//	p          - 精度阈值，列范数偏离1超过p时判定不再幺正，取值(0,1)
//	gateCutoff - 门截断
//	cutoff     - 仿真Fock基截断
//
// 返回:
//
//	最小仿真截断，满足 gateCutoff < 结果 <= cutoff+1
func MinCutoff(u maths.Matrix, p float64, gateCutoff, cutoff int) (int, error) {
	m, gateCols, err := cutoffScanSetup(u, p, gateCutoff, cutoff)
	if err != nil {
		return 0, err
	}
	norms := make([]float64, gateCols)
	for n := cutoff; n > gateCutoff; n-- {
		rows := intPow(n, m)
		for j := range norms {
			norms[j] = 1 - u.ColumnNorm(j, rows)
		}
		if floats.Max(norms) > p {
			return n + 1, nil
		}
	}
	return gateCutoff + 1, nil
}

// SweepPoint 截断扫描中单个截断维度的记录
type SweepPoint struct {
	N   int     // 仿真截断
	Eps float64 // 列范数偏离1的最大值
}

// SweepResult 截断扫描结果
type SweepResult struct {
	Modes      int          // 模式数
	GateCutoff int          // 门截断
	Cutoff     int          // 仿真截断
	Precision  float64      // 精度阈值
	Points     []SweepPoint // 按n从cutoff递减排列
	MinCutoff  int          // 最小安全截断（与MinCutoff函数同一约定）
}

// Sweep 记录MinCutoff扫描范围内每个截断维度的误差曲线
// 与MinCutoff不同，扫描不在首次超限时停止，便于绘制完整的误差曲线。
func Sweep(u maths.Matrix, p float64, gateCutoff, cutoff int) (*SweepResult, error) {
	m, gateCols, err := cutoffScanSetup(u, p, gateCutoff, cutoff)
	if err != nil {
		return nil, err
	}
	result := &SweepResult{
		Modes:      m,
		GateCutoff: gateCutoff,
		Cutoff:     cutoff,
		Precision:  p,
		MinCutoff:  gateCutoff + 1,
	}
	found := false
	norms := make([]float64, gateCols)
	for n := cutoff; n > gateCutoff; n-- {
		rows := intPow(n, m)
		for j := range norms {
			norms[j] = 1 - u.ColumnNorm(j, rows)
		}
		eps := floats.Max(norms)
		result.Points = append(result.Points, SweepPoint{N: n, Eps: eps})
		if !found && eps > p {
			result.MinCutoff = n + 1
			found = true
		}
	}
	return result, nil
}

// cutoffScanSetup 截断扫描的公共校验与准备
func cutoffScanSetup(u maths.Matrix, p float64, gateCutoff, cutoff int) (m, gateCols int, err error) {
	if p <= 0 || p >= 1 {
		return 0, 0, fmt.Errorf("%w: precision must be in (0,1), got %g", ErrInvalidParameter, p)
	}
	if gateCutoff < 1 || gateCutoff >= cutoff {
		return 0, 0, fmt.Errorf("%w: gate cutoff %d must be positive and below cutoff %d", ErrInvalidParameter, gateCutoff, cutoff)
	}
	m, err = Modes(u, cutoff)
	if err != nil {
		return 0, 0, err
	}
	gateCols = intPow(gateCutoff, m)
	if gateCols > u.Cols() {
		return 0, 0, fmt.Errorf("%w: matrix has %d columns, scan needs %d", ErrInvalidDimensions, u.Cols(), gateCols)
	}
	return m, gateCols, nil
}
