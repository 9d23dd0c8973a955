package qfock

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"qfock/fidelity"
	"qfock/maths"
)

func TestAnalyzeIdentityScenario(t *testing.T) {
	// V为单位矩阵、U为其前2列时，所有度量均为1
	const cutoff = 10
	v := maths.NewIdentityMatrix(cutoff)
	u := v.Slice(0, cutoff, 0, 2)

	report, err := Analyze(v, u, cutoff, func(a *Analysis) {
		a.Samples = 50
		a.Src = rand.NewPCG(1, 2)
	})
	if err != nil {
		t.Fatalf("分析失败: %v", err)
	}
	if report.Modes != 1 {
		t.Errorf("模式数希望得到 1, 得到 %d", report.Modes)
	}
	if report.GateCutoff != 2 {
		t.Errorf("门截断希望得到 2, 得到 %d", report.GateCutoff)
	}
	if report.MinCutoff != 3 {
		t.Errorf("最小截断希望得到 3, 得到 %d", report.MinCutoff)
	}
	for name, value := range map[string]float64{
		"态保真度":    report.StateFidelity,
		"采样平均保真度": report.SampledFidelity,
		"过程保真度":   report.ProcessFidelity,
		"平均保真度":   report.AverageFidelity,
	} {
		if math.Abs(value-1) > 1e-9 {
			t.Errorf("%s希望得到 1, 得到 %v", name, value)
		}
	}
}

func TestAnalyzeWithSampling(t *testing.T) {
	// WithSampling 使用默认样本数开启采样估计
	const cutoff = 10
	v := maths.NewIdentityMatrix(cutoff)
	u := v.Slice(0, cutoff, 0, 2)

	report, err := Analyze(v, u, cutoff, WithSampling(rand.NewPCG(7, 11)))
	if err != nil {
		t.Fatalf("分析失败: %v", err)
	}
	// U是V的精确截断，每个采样态的保真度都恰为1
	if math.Abs(report.SampledFidelity-1) > 1e-9 {
		t.Errorf("采样平均保真度希望得到 1, 得到 %v", report.SampledFidelity)
	}
}

func TestAnalyzeSkipsSamplingByDefault(t *testing.T) {
	const cutoff = 10
	v := maths.NewIdentityMatrix(cutoff)
	u := v.Slice(0, cutoff, 0, 2)

	report, err := Analyze(v, u, cutoff)
	if err != nil {
		t.Fatalf("分析失败: %v", err)
	}
	if report.SampledFidelity != 0 {
		t.Errorf("未开启采样时希望得到 0, 得到 %v", report.SampledFidelity)
	}
}

func TestAnalyzeInvalidShape(t *testing.T) {
	v := maths.NewDenseMatrix(12, 12)
	u := maths.NewDenseMatrix(12, 2)
	if _, err := Analyze(v, u, 10); !errors.Is(err, fidelity.ErrInvalidDimensions) {
		t.Errorf("非法形状希望得到 ErrInvalidDimensions, 得到 %v", err)
	}
}
