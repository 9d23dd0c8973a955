// Package qfock 评估数值优化门与理想门的接近程度：
// 给定目标幺正矩阵与学习所得（可能更低截断的）幺正矩阵，
// 一次性给出模式数、门截断、最小安全截断与各保真度度量。
package qfock

import (
	"math/rand/v2"

	"qfock/fidelity"
	"qfock/maths"
)

// DefaultPrecision 最小截断搜索的默认精度阈值
const DefaultPrecision = 1e-3

// DefaultSamples 蒙特卡洛估计的默认样本数
const DefaultSamples = 10000

// Analysis 分析配置
type Analysis struct {
	Precision float64     // 最小截断搜索的精度阈值
	Samples   int         // 蒙特卡洛样本数（0时跳过采样估计）
	Src       rand.Source // 随机源（nil使用全局随机源）
}

// WithSampling 启用蒙特卡洛采样估计，样本数为DefaultSamples
func WithSampling(src rand.Source) func(*Analysis) {
	return func(a *Analysis) {
		a.Samples = DefaultSamples
		a.Src = src
	}
}

// Report 目标/学习幺正矩阵对的分析结果
type Report struct {
	Modes           int     // 模式数
	GateCutoff      int     // 门截断d
	MinCutoff       int     // 保持幺正性的最小仿真截断
	StateFidelity   float64 // 等幅叠加态上的态保真度
	SampledFidelity float64 // 蒙特卡洛平均保真度（Samples>0时有效）
	ProcessFidelity float64 // 过程保真度
	AverageFidelity float64 // 闭式平均保真度
}

// Analyze 一次性分析目标/学习幺正矩阵对
// 参数:
//
//	v      - 目标幺正矩阵，形状 [c^m, c^m]
//	u      - 学习所得幺正矩阵，形状 [c^m, d^m]
//	cutoff - 仿真Fock基截断c
//	opts   - 配置回调（修改默认的Analysis配置）
func Analyze(v, u maths.Matrix, cutoff int, opts ...func(*Analysis)) (*Report, error) {
	cfg := &Analysis{Precision: DefaultPrecision}
	for _, opt := range opts {
		opt(cfg)
	}

	m, err := fidelity.Modes(v, cutoff)
	if err != nil {
		return nil, err
	}
	d, err := fidelity.Truncation(u, m)
	if err != nil {
		return nil, err
	}
	report := &Report{Modes: m, GateCutoff: d}

	report.MinCutoff, err = fidelity.MinCutoff(v, cfg.Precision, d, cutoff)
	if err != nil {
		return nil, err
	}
	_, _, report.StateFidelity, err = fidelity.UnitaryStateFidelity(v, u, cutoff)
	if err != nil {
		return nil, err
	}
	report.ProcessFidelity, err = fidelity.ProcessFidelity(v, u, cutoff)
	if err != nil {
		return nil, err
	}
	report.AverageFidelity, err = fidelity.AverageFidelity(v, u, cutoff)
	if err != nil {
		return nil, err
	}
	if cfg.Samples > 0 {
		report.SampledFidelity, err = fidelity.SampleAverageFidelity(v, u, cutoff, cfg.Samples, cfg.Src)
		if err != nil {
			return nil, err
		}
	}
	return report, nil
}
