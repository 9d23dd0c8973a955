package maths

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// padeCoefficients Padé(13,13)逼近系数（Higham标度平方法）
var padeCoefficients = [14]float64{
	64764752532480000, 32382376266240000, 7771770303897600, 1187353796428800,
	129060195264000, 10559470521600, 670442572800, 33522128640,
	1323241920, 40840800, 960960, 16380, 182, 1,
}

// padeTheta13 Padé(13,13)的标度阈值（1-范数上限）
const padeTheta13 = 5.371920351148152

// Expm 计算复数方阵的矩阵指数e^A（标度平方法 + Padé(13,13)逼近）
// 参数:
//
//	a - 输入方阵A
//
// 返回:
//
//	e^A矩阵，错误信息（非方阵或逼近方程奇异时）
func Expm(a Matrix) (Matrix, error) {
	if !a.IsSquare() {
		return nil, errors.New("expm: input must be square matrix")
	}
	n := a.Rows()
	if n == 0 {
		return NewDenseMatrix(0, 0), nil
	}

	// 标度：压缩1-范数到Padé逼近的收敛域内
	s := 0
	if norm := matrixNorm1(a); norm > padeTheta13 {
		s = int(math.Ceil(math.Log2(norm / padeTheta13)))
	}
	scaled := NewDenseMatrix(n, n)
	a.Copy(scaled)
	if s > 0 {
		scaled.Scale(complex(1/math.Pow(2, float64(s)), 0))
	}

	// 计算偶次幂
	a2 := scaled.MatrixMultiply(scaled)
	a4 := a2.MatrixMultiply(a2)
	a6 := a2.MatrixMultiply(a4)

	identity := NewIdentityMatrix(n)
	b := padeCoefficients

	// U = A*(A6*(b13*A6 + b11*A4 + b9*A2) + b7*A6 + b5*A4 + b3*A2 + b1*I)
	inner := matrixLinComb(n, b[13], a6, b[11], a4, b[9], a2)
	u := a6.MatrixMultiply(inner)
	u.Add(matrixLinComb(n, b[7], a6, b[5], a4, b[3], a2))
	u.Add(scaledIdentity(identity, b[1]))
	u = scaled.MatrixMultiply(u)

	// V = A6*(b12*A6 + b10*A4 + b8*A2) + b6*A6 + b4*A4 + b2*A2 + b0*I
	inner = matrixLinComb(n, b[12], a6, b[10], a4, b[8], a2)
	v := a6.MatrixMultiply(inner)
	v.Add(matrixLinComb(n, b[6], a6, b[4], a4, b[2], a2))
	v.Add(scaledIdentity(identity, b[0]))

	// 求解 (V-U)*R = (V+U)
	lhs := NewDenseMatrix(n, n)
	v.Copy(lhs)
	negU := NewDenseMatrix(n, n)
	u.Copy(negU)
	negU.Scale(-1)
	lhs.Add(negU)
	rhs := NewDenseMatrix(n, n)
	v.Copy(rhs)
	rhs.Add(u)

	result, err := solveColumns(lhs, rhs)
	if err != nil {
		return nil, fmt.Errorf("expm: %w", err)
	}

	// 逆标度：重复平方恢复原矩阵指数
	for i := 0; i < s; i++ {
		result = result.MatrixMultiply(result)
	}
	return result, nil
}

// matrixNorm1 矩阵1-范数（最大绝对值列和）
func matrixNorm1(a Matrix) float64 {
	max := 0.0
	for j := 0; j < a.Cols(); j++ {
		sum := 0.0
		for i := 0; i < a.Rows(); i++ {
			sum += cmplx.Abs(a.Get(i, j))
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// matrixLinComb 三项线性组合 c1*m1 + c2*m2 + c3*m3
func matrixLinComb(n int, c1 float64, m1 Matrix, c2 float64, m2 Matrix, c3 float64, m3 Matrix) Matrix {
	out := NewDenseMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, complex(c1, 0)*m1.Get(i, j)+complex(c2, 0)*m2.Get(i, j)+complex(c3, 0)*m3.Get(i, j))
		}
	}
	return out
}

// scaledIdentity 单位矩阵的倍数 c*I
func scaledIdentity(identity Matrix, c float64) Matrix {
	n := identity.Rows()
	out := NewDenseMatrix(n, n)
	identity.Copy(out)
	out.Scale(complex(c, 0))
	return out
}

// solveColumns 按列求解矩阵方程 A*X = B
func solveColumns(a, b Matrix) (Matrix, error) {
	n := a.Rows()
	lu, err := NewLU(n)
	if err != nil {
		return nil, err
	}
	if err := lu.Decompose(a); err != nil {
		return nil, err
	}
	out := NewDenseMatrix(n, b.Cols())
	x := NewDenseVector(n)
	for j := 0; j < b.Cols(); j++ {
		if err := lu.SolveReuse(b.Column(j), x); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out.Set(i, j, x.Get(i))
		}
	}
	return out, nil
}
