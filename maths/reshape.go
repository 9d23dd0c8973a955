package maths

import "fmt"

// TwoModeBlock 提取双模矩阵的截断块
// 将矩阵M视为四指标张量 M[i,j,k,l]（行索引 i*rowBase+j，列索引 k*colBase+l），
// 取 i,j < n 且 k,l < d 的块，按行优先重新平铺为 [n², d²] 矩阵。
// 参数:
//
//	m       - 输入矩阵，形状 [rowBase², colBase²]
//	rowBase - 行方向单模维度
//	colBase - 列方向单模维度
//	n       - 行方向单模截断（n ≤ rowBase）
//	d       - 列方向单模截断（d ≤ colBase）
func TwoModeBlock(m Matrix, rowBase, colBase, n, d int) Matrix {
	if m.Rows() != rowBase*rowBase || m.Cols() != colBase*colBase {
		panic(fmt.Sprintf("two-mode block: matrix shape %dx%d does not match bases %d, %d", m.Rows(), m.Cols(), rowBase, colBase))
	}
	if n < 0 || n > rowBase || d < 0 || d > colBase {
		panic(fmt.Sprintf("two-mode block: truncation out of range: n=%d (base %d), d=%d (base %d)", n, rowBase, d, colBase))
	}
	out := NewDenseMatrix(n*n, d*d)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < d; k++ {
				for l := 0; l < d; l++ {
					out.Set(i*n+j, k*d+l, m.Get(i*rowBase+j, k*colBase+l))
				}
			}
		}
	}
	return out
}
