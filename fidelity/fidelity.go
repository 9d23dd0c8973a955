package fidelity

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"qfock/gate"
	"qfock/maths"
)

// UnitaryStateFidelity 等幅叠加态上的态保真度
// 参考态 |ψ_d⟩ = (1/√d)Σ_{n<d}|n⟩（双模时为两份张量积，即d²个基矢对
// 上的均匀幅度1/d），返回 V|ψ_d⟩、U|ψ_d⟩ 以及 |⟨Vψ|Uψ⟩|²。
// 参数:
//
//	v      - 目标幺正矩阵，形状 [c^m, c^m]
//	u      - 学习所得幺正矩阵，形状 [c^m, d^m]
//	cutoff - 仿真Fock基截断c
func UnitaryStateFidelity(v, u maths.Matrix, cutoff int) (maths.Vector, maths.Vector, float64, error) {
	m, d, err := modePair(v, u, cutoff)
	if err != nil {
		return nil, nil, 0, err
	}

	var state1, state2 maths.Vector
	switch m {
	case 1:
		// 单模：V前d列按行求和除√d即 V|ψ_d⟩
		state1 = columnSum(v, d)
		state2 = columnSum(u, d)
	case 2:
		// 双模：目标矩阵重排为 [c², d²] 后作用于均匀态
		ut := maths.TwoModeBlock(v, cutoff, cutoff, cutoff, d)
		eq := equalSuperposition(d)
		state1 = ut.MatrixVectorMultiply(eq)
		state2 = u.MatrixVectorMultiply(eq)
	}

	overlap := state1.DotProduct(state2)
	return state1, state2, absSquared(overlap), nil
}

// SampleAverageFidelity 蒙特卡洛估计的平均保真度
// 每次试验取Haar随机幺正矩阵W的首列作为随机纯态，计算
// f = |⟨0|W†Ut†UW|0⟩|²，返回samples次试验的算术平均。
// 无偏估计量，方差随1/samples下降；src为nil时结果不可复现，
// 需要可复现结果的调用方应注入固定种子的随机源。
func SampleAverageFidelity(v, u maths.Matrix, cutoff, samples int, src rand.Source) (float64, error) {
	if samples <= 0 {
		return 0, fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidParameter, samples)
	}
	m, d, err := modePair(v, u, cutoff)
	if err != nil {
		return 0, err
	}

	var ut maths.Matrix
	switch m {
	case 1:
		ut = v.Slice(0, v.Rows(), 0, d)
	case 2:
		ut = maths.TwoModeBlock(v, cutoff, cutoff, cutoff, d)
	}

	// 每个样本只依赖 Ut†U ∈ [d^m, d^m]，预先计算
	overlap := ut.ConjugateTranspose().MatrixMultiply(u)
	dim := intPow(d, m)
	w0 := maths.NewDenseVector(dim)
	fid := make([]float64, samples)
	for i := range fid {
		w := gate.Haar(dim, src)
		for k := 0; k < dim; k++ {
			w0.Set(k, w.Get(k, 0))
		}
		fid[i] = absSquared(w0.DotProduct(overlap.MatrixVectorMultiply(w0)))
	}
	return stat.Mean(fid, nil), nil
}

// ProcessFidelity 过程保真度（最大纠缠态/Choi构造的精确值）
// 参考纠缠态 φ = vec(I_{d^m})/√(d^m)，计算 ψV = (I⊗Ut)φ、ψU = (I⊗Ul)φ，
// 返回 |⟨ψV|ψU⟩|²。
// 前置条件（不做检查）：目标幺正矩阵不把前d个基矢的幅度泄漏到
// 索引不小于d的区域，否则结果无明确意义。
func ProcessFidelity(v, u maths.Matrix, cutoff int) (float64, error) {
	m, d, err := modePair(v, u, cutoff)
	if err != nil {
		return 0, err
	}

	var ut, ul maths.Matrix
	switch m {
	case 1:
		ut = v.Slice(0, d, 0, d)
		ul = u.Slice(0, d, 0, d)
	case 2:
		ut = maths.TwoModeBlock(v, cutoff, cutoff, d, d)
		ul = maths.TwoModeBlock(u, cutoff, d, d, d)
	}

	dim := intPow(d, m)
	identity := maths.NewIdentityMatrix(dim)
	phi := identity.ToDense() // 行优先展开即vec(I)
	phi.Scale(complex(1/math.Sqrt(float64(dim)), 0))

	psiV := identity.Kronecker(ut).MatrixVectorMultiply(phi)
	psiU := identity.Kronecker(ul).MatrixVectorMultiply(phi)
	return absSquared(psiV.DotProduct(psiU)), nil
}

// AverageFidelity 平均保真度（由过程保真度的闭式换算）
// F̄ = (Fe·d + 1)/(d + 1)，d为单模门截断。
// 前置条件与ProcessFidelity相同。
func AverageFidelity(v, u maths.Matrix, cutoff int) (float64, error) {
	_, d, err := modePair(v, u, cutoff)
	if err != nil {
		return 0, err
	}
	fe, err := ProcessFidelity(v, u, cutoff)
	if err != nil {
		return 0, err
	}
	return (fe*float64(d) + 1) / (float64(d) + 1), nil
}

// ConvergencePoint 蒙特卡洛收敛记录中的单个样本数
type ConvergencePoint struct {
	Samples   int     // 样本数
	Sampled   float64 // 蒙特卡洛估计值
	Exact     float64 // 闭式平均保真度（估计量的极限）
	Deviation float64 // |Sampled - Exact|
}

// Convergence 逐样本数记录蒙特卡洛估计相对闭式平均保真度的收敛
func Convergence(v, u maths.Matrix, cutoff int, sampleSizes []int, src rand.Source) ([]ConvergencePoint, error) {
	exact, err := AverageFidelity(v, u, cutoff)
	if err != nil {
		return nil, err
	}
	points := make([]ConvergencePoint, 0, len(sampleSizes))
	for _, samples := range sampleSizes {
		sampled, err := SampleAverageFidelity(v, u, cutoff, samples, src)
		if err != nil {
			return nil, err
		}
		points = append(points, ConvergencePoint{
			Samples:   samples,
			Sampled:   sampled,
			Exact:     exact,
			Deviation: math.Abs(sampled - exact),
		})
	}
	return points, nil
}

// columnSum 前d列按行求和除√d
func columnSum(m maths.Matrix, d int) maths.Vector {
	inv := complex(1/math.Sqrt(float64(d)), 0)
	out := maths.NewDenseVector(m.Rows())
	for i := 0; i < m.Rows(); i++ {
		var sum complex128
		for j := 0; j < d; j++ {
			sum += m.Get(i, j)
		}
		out.Set(i, sum*inv)
	}
	return out
}

// equalSuperposition 双模等幅叠加态：d²个基矢对上的均匀幅度1/d
func equalSuperposition(d int) maths.Vector {
	out := maths.NewDenseVector(d * d)
	amp := complex(1/float64(d), 0)
	for i := 0; i < d*d; i++ {
		out.Set(i, amp)
	}
	return out
}

func absSquared(v complex128) float64 {
	a := cmplx.Abs(v)
	return a * a
}
