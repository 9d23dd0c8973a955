package gate

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"qfock/maths"
)

// Haar 采样n×n的Haar分布随机幺正矩阵
// 复Ginibre矩阵（独立标准复正态元素）做修正Gram-Schmidt正交化，
// R对角线为正实数时Q因子唯一且服从Haar测度。
// src为nil时使用全局随机源（结果不可复现）。
func Haar(n int, src rand.Source) maths.Matrix {
	if n < 1 {
		panic(fmt.Sprintf("haar: dimension must be positive, got %d", n))
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	invSqrt2 := complex(1/math.Sqrt2, 0)

	// 复Ginibre矩阵：实虚部独立N(0,1)，除√2归一化（按列存储）
	cols := make([][]complex128, n)
	for j := 0; j < n; j++ {
		cols[j] = make([]complex128, n)
		for i := 0; i < n; i++ {
			cols[j][i] = complex(normal.Rand(), normal.Rand()) * invSqrt2
		}
	}

	// 修正Gram-Schmidt按列正交化
	q := maths.NewDenseMatrix(n, n)
	for j := 0; j < n; j++ {
		v := cols[j]
		for k := 0; k < j; k++ {
			prev := cols[k]
			var r complex128
			for i := 0; i < n; i++ {
				r += cmplx.Conj(prev[i]) * v[i]
			}
			for i := 0; i < n; i++ {
				v[i] -= r * prev[i]
			}
		}
		norm := 0.0
		for i := 0; i < n; i++ {
			re, im := real(v[i]), imag(v[i])
			norm += re*re + im*im
		}
		norm = math.Sqrt(norm)
		if norm < maths.Epsilon {
			// 退化列（概率为零的事件）：重新采样整个矩阵
			return Haar(n, src)
		}
		inv := complex(1/norm, 0)
		for i := 0; i < n; i++ {
			v[i] *= inv
			q.Set(i, j, v[i])
		}
	}
	return q
}
