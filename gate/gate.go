// Package gate 构造截断Fock基下的量子光学门幺正矩阵。
// 保真度核心只消费这里返回的矩阵（维度与模式数已知），不依赖构造细节。
package gate

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"qfock/maths"
)

// DefaultOffset 三次相位门矩阵指数计算的默认额外截断
const DefaultOffset = 20

// CubicPhase 三次相位门 e^{-iγx³}（ħ=2约定）
// 在 cutoff+offset 维的扩展基上计算矩阵指数，再截断回 [cutoff, cutoff]，
// offset越大返回的截断幺正矩阵数值精度越高。
// 参数:
//
//	gamma  - 门参数γ
//	cutoff - 返回幺正矩阵的Fock基截断
//	offset - 矩阵指数计算使用的额外截断（非正时取DefaultOffset）
func CubicPhase(gamma float64, cutoff, offset int) (maths.Matrix, error) {
	if cutoff < 1 {
		return nil, errors.New("cubic phase: cutoff must be positive")
	}
	if offset <= 0 {
		offset = DefaultOffset
	}
	dim := cutoff + offset

	// 位置算符 x = a + a†（ħ=2时无额外系数），三对角矩阵
	x := maths.NewDenseMatrix(dim, dim)
	for n := 0; n < dim-1; n++ {
		v := complex(math.Sqrt(float64(n+1)), 0)
		x.Set(n, n+1, v)
		x.Set(n+1, n, v)
	}

	// -iγx³
	x3 := x.MatrixMultiply(x).MatrixMultiply(x)
	x3.Scale(complex(0, -gamma))

	u, err := maths.Expm(x3)
	if err != nil {
		return nil, fmt.Errorf("cubic phase: %w", err)
	}
	return u.Slice(0, cutoff, 0, cutoff), nil
}

// CrossKerr 交叉Kerr相互作用 e^{iκn₁n₂}（双模）
// 数算符乘积在Fock基下是对角的，直接写出谱：
// 基矢 |n₁,n₂⟩（平铺索引 n₁*cutoff+n₂）对应相位 e^{iκn₁n₂}。
// 返回形状 [cutoff², cutoff²]。
func CrossKerr(kappa float64, cutoff int) (maths.Matrix, error) {
	if cutoff < 1 {
		return nil, errors.New("cross kerr: cutoff must be positive")
	}
	u := maths.NewDenseMatrix(cutoff*cutoff, cutoff*cutoff)
	for n1 := 0; n1 < cutoff; n1++ {
		for n2 := 0; n2 < cutoff; n2++ {
			idx := n1*cutoff + n2
			u.Set(idx, idx, cmplx.Exp(complex(0, kappa*float64(n1*n2))))
		}
	}
	return u, nil
}

// RandomUnitary Fock基下的随机幺正矩阵
// 截断为cutoff的单位矩阵，左上 [size, size] 块替换为Haar随机幺正矩阵，
// 作用于基矢 |0⟩ 到 |size-1⟩。
// 参数:
//
//	size   - 随机幺正块的大小（必须不大于cutoff）
//	cutoff - 返回幺正矩阵的Fock基截断
//	src    - 随机源（nil时使用全局随机源）
func RandomUnitary(size, cutoff int, src rand.Source) (maths.Matrix, error) {
	if size < 1 {
		return nil, errors.New("random unitary: size must be positive")
	}
	if size > cutoff {
		return nil, fmt.Errorf("random unitary: size %d exceeds cutoff %d", size, cutoff)
	}
	u := maths.NewIdentityMatrix(cutoff)
	w := Haar(size, src)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			u.Set(i, j, w.Get(i, j))
		}
	}
	return u, nil
}

// DFT Fock基下的离散傅里叶变换
// 截断为cutoff的单位矩阵，左上 [size, size] 块替换为归一化DFT矩阵
// ω^{jk}/√size，ω = e^{-2πi/size}。
func DFT(size, cutoff int) (maths.Matrix, error) {
	if size < 1 {
		return nil, errors.New("dft: size must be positive")
	}
	if size > cutoff {
		return nil, fmt.Errorf("dft: size %d exceeds cutoff %d", size, cutoff)
	}
	u := maths.NewIdentityMatrix(cutoff)
	scale := 1 / math.Sqrt(float64(size))
	for j := 0; j < size; j++ {
		for k := 0; k < size; k++ {
			theta := -2 * math.Pi * float64(j*k) / float64(size)
			u.Set(j, k, complex(scale, 0)*cmplx.Exp(complex(0, theta)))
		}
	}
	return u, nil
}
