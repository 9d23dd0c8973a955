package fidelity

import (
	"errors"
	"testing"

	"qfock/gate"
	"qfock/maths"
)

func TestMinCutoffIdentity(t *testing.T) {
	// 单位矩阵所有列范数恒为1，扫描全程安全，返回gateCutoff+1
	const gateCutoff, cutoff = 4, 10
	got, err := MinCutoff(maths.NewIdentityMatrix(cutoff), 0.001, gateCutoff, cutoff)
	if err != nil {
		t.Fatalf("最小截断搜索失败: %v", err)
	}
	if got != gateCutoff+1 {
		t.Errorf("单位矩阵希望得到最小截断 %d, 得到 %d", gateCutoff+1, got)
	}
}

func TestMinCutoffZeroMatrix(t *testing.T) {
	// 零矩阵的列范数为0，首个截断即超限，返回cutoff+1
	const gateCutoff, cutoff = 4, 10
	got, err := MinCutoff(maths.NewDenseMatrix(cutoff, cutoff), 0.5, gateCutoff, cutoff)
	if err != nil {
		t.Fatalf("最小截断搜索失败: %v", err)
	}
	if got != cutoff+1 {
		t.Errorf("零矩阵希望得到最小截断 %d, 得到 %d", cutoff+1, got)
	}
}

func TestMinCutoffRange(t *testing.T) {
	// 对真实泄漏的门检查范围不变量: gateCutoff < 结果 <= cutoff+1
	const gateCutoff, cutoff = 3, 10
	u, err := gate.CubicPhase(0.05, cutoff, 0)
	if err != nil {
		t.Fatalf("三次相位门构造失败: %v", err)
	}
	for _, p := range []float64{1e-6, 1e-4, 1e-2, 0.5} {
		got, err := MinCutoff(u, p, gateCutoff, cutoff)
		if err != nil {
			t.Fatalf("最小截断搜索失败 (p=%g): %v", p, err)
		}
		if got <= gateCutoff || got > cutoff+1 {
			t.Errorf("最小截断 %d 超出范围 (%d, %d] (p=%g)", got, gateCutoff, cutoff+1, p)
		}
	}
}

func TestMinCutoffMonotonicInPrecision(t *testing.T) {
	// 放宽精度阈值不会增大返回的截断
	const gateCutoff, cutoff = 3, 10
	u, err := gate.CubicPhase(0.05, cutoff, 0)
	if err != nil {
		t.Fatalf("三次相位门构造失败: %v", err)
	}
	prev := cutoff + 2
	for _, p := range []float64{1e-8, 1e-6, 1e-4, 1e-2, 0.5} {
		got, err := MinCutoff(u, p, gateCutoff, cutoff)
		if err != nil {
			t.Fatalf("最小截断搜索失败 (p=%g): %v", p, err)
		}
		if got > prev {
			t.Errorf("p=%g 时截断 %d 大于更严格阈值的截断 %d", p, got, prev)
		}
		prev = got
	}
}

func TestMinCutoffInvalidParameters(t *testing.T) {
	u := maths.NewIdentityMatrix(10)
	if _, err := MinCutoff(u, 0, 4, 10); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("p=0 希望得到 ErrInvalidParameter, 得到 %v", err)
	}
	if _, err := MinCutoff(u, 1, 4, 10); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("p=1 希望得到 ErrInvalidParameter, 得到 %v", err)
	}
	if _, err := MinCutoff(u, 0.1, 10, 10); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("gateCutoff=cutoff 希望得到 ErrInvalidParameter, 得到 %v", err)
	}
}

func TestSweepMatchesMinCutoff(t *testing.T) {
	const gateCutoff, cutoff = 3, 10
	u, err := gate.CubicPhase(0.05, cutoff, 0)
	if err != nil {
		t.Fatalf("三次相位门构造失败: %v", err)
	}
	const p = 1e-4
	want, err := MinCutoff(u, p, gateCutoff, cutoff)
	if err != nil {
		t.Fatalf("最小截断搜索失败: %v", err)
	}
	sweep, err := Sweep(u, p, gateCutoff, cutoff)
	if err != nil {
		t.Fatalf("截断扫描失败: %v", err)
	}
	if sweep.MinCutoff != want {
		t.Errorf("扫描得到的最小截断 %d 与MinCutoff的 %d 不一致", sweep.MinCutoff, want)
	}
	if len(sweep.Points) != cutoff-gateCutoff {
		t.Errorf("扫描点数希望得到 %d, 得到 %d", cutoff-gateCutoff, len(sweep.Points))
	}
	// 截断越小泄漏越大，误差曲线沿扫描方向不减
	for i := 1; i < len(sweep.Points); i++ {
		if sweep.Points[i].Eps < sweep.Points[i-1].Eps-1e-12 {
			t.Errorf("误差曲线在 n=%d 处下降: %g -> %g", sweep.Points[i].N, sweep.Points[i-1].Eps, sweep.Points[i].Eps)
		}
	}
}
