package maths

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// denseMatrix 稠密复数矩阵实现（行优先平铺存储）
type denseMatrix struct {
	rows, cols int
	data       []complex128 // 索引公式 i*cols + j
}

// NewDenseMatrix 创建指定维度的空稠密矩阵
func NewDenseMatrix(rows, cols int) Matrix {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	return &denseMatrix{
		rows: rows,
		cols: cols,
		data: make([]complex128, rows*cols),
	}
}

// NewDenseMatrixWithData 从行优先平铺数据创建稠密矩阵（不复制底层切片）
func NewDenseMatrixWithData(rows, cols int, data []complex128) Matrix {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("dense data length mismatch: expected %d, got %d", rows*cols, len(data)))
	}
	return &denseMatrix{rows: rows, cols: cols, data: data}
}

// NewIdentityMatrix 创建n阶单位矩阵
func NewIdentityMatrix(n int) Matrix {
	m := NewDenseMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Rows 返回矩阵行数
func (m *denseMatrix) Rows() int {
	return m.rows
}

// Cols 返回矩阵列数
func (m *denseMatrix) Cols() int {
	return m.cols
}

// IsSquare 判断是否为方阵
func (m *denseMatrix) IsSquare() bool {
	return m.rows == m.cols
}

// index 行列索引转平铺索引（越界panic）
func (m *denseMatrix) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index out of range: row=%d, col=%d (rows=%d, cols=%d)", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// Get 获取指定行列元素值（越界panic）
func (m *denseMatrix) Get(row, col int) complex128 {
	return m.data[m.index(row, col)]
}

// Set 设置指定行列元素值（越界panic）
func (m *denseMatrix) Set(row, col int, value complex128) {
	m.data[m.index(row, col)] = value
}

// Slice 复制子矩阵 [r0,r1)×[c0,c1)
func (m *denseMatrix) Slice(r0, r1, c0, c1 int) Matrix {
	if r0 < 0 || r1 > m.rows || c0 < 0 || c1 > m.cols || r0 > r1 || c0 > c1 {
		panic(fmt.Sprintf("invalid slice bounds: [%d,%d)×[%d,%d) of %dx%d", r0, r1, c0, c1, m.rows, m.cols))
	}
	out := &denseMatrix{
		rows: r1 - r0,
		cols: c1 - c0,
		data: make([]complex128, (r1-r0)*(c1-c0)),
	}
	for i := r0; i < r1; i++ {
		copy(out.data[(i-r0)*out.cols:(i-r0+1)*out.cols], m.data[i*m.cols+c0:i*m.cols+c1])
	}
	return out
}

// Column 复制指定列
func (m *denseMatrix) Column(col int) Vector {
	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("column index out of range: %d (cols: %d)", col, m.cols))
	}
	out := make([]complex128, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+col]
	}
	return NewDenseVectorWithData(out)
}

// ColumnNorm 指定列前rows个元素的欧几里得范数
func (m *denseMatrix) ColumnNorm(col int, rows int) float64 {
	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("column index out of range: %d (cols: %d)", col, m.cols))
	}
	if rows < 0 || rows > m.rows {
		panic(fmt.Sprintf("row count out of range: %d (rows: %d)", rows, m.rows))
	}
	sum := 0.0
	for i := 0; i < rows; i++ {
		value := m.data[i*m.cols+col]
		re, im := real(value), imag(value)
		sum += re*re + im*im
	}
	return math.Sqrt(sum)
}

// ToDense 转换为稠密向量（行优先展开，返回副本）
func (m *denseMatrix) ToDense() Vector {
	out := make([]complex128, len(m.data))
	copy(out, m.data)
	return NewDenseVectorWithData(out)
}

// Zero 清空矩阵为零矩阵
func (m *denseMatrix) Zero() {
	clear(m.data)
}

// Copy 复制自身数据到目标矩阵
func (m *denseMatrix) Copy(a Matrix) {
	switch target := a.(type) {
	case *denseMatrix:
		// 同类型直接复制（高效）
		if target.rows != m.rows || target.cols != m.cols {
			panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, target.rows, target.cols))
		}
		copy(target.data, m.data)
	default:
		// 异类型逐个元素复制
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				a.Set(i, j, m.data[i*m.cols+j])
			}
		}
	}
}

// SwapRows 交换两行
func (m *denseMatrix) SwapRows(row1, row2 int) {
	if row1 < 0 || row1 >= m.rows || row2 < 0 || row2 >= m.rows {
		panic(fmt.Sprintf("row index out of range: %d, %d (rows: %d)", row1, row2, m.rows))
	}
	if row1 == row2 {
		return
	}
	a := m.data[row1*m.cols : (row1+1)*m.cols]
	b := m.data[row2*m.cols : (row2+1)*m.cols]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// MatrixVectorMultiply 矩阵向量乘法（A*x，返回新向量）
func (m *denseMatrix) MatrixVectorMultiply(x Vector) Vector {
	if x.Length() != m.cols {
		panic(fmt.Sprintf("vector dimension mismatch: x length=%d, matrix cols=%d", x.Length(), m.cols))
	}
	result := make([]complex128, m.rows)
	for i := 0; i < m.rows; i++ {
		var sum complex128
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, value := range row {
			sum += value * x.Get(j)
		}
		result[i] = sum
	}
	return NewDenseVectorWithData(result)
}

// MatrixMultiply 矩阵乘法（A*B，返回新矩阵）
func (m *denseMatrix) MatrixMultiply(b Matrix) Matrix {
	if b.Rows() != m.cols {
		panic(fmt.Sprintf("matrix dimension mismatch: A cols=%d, B rows=%d", m.cols, b.Rows()))
	}
	out := &denseMatrix{
		rows: m.rows,
		cols: b.Cols(),
		data: make([]complex128, m.rows*b.Cols()),
	}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			aik := m.data[i*m.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < out.cols; j++ {
				out.data[i*out.cols+j] += aik * b.Get(k, j)
			}
		}
	}
	return out
}

// ConjugateTranspose 共轭转置A†（返回新矩阵）
func (m *denseMatrix) ConjugateTranspose() Matrix {
	out := &denseMatrix{
		rows: m.cols,
		cols: m.rows,
		data: make([]complex128, len(m.data)),
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = cmplx.Conj(m.data[i*m.cols+j])
		}
	}
	return out
}

// Kronecker 克罗内克积A⊗B（返回新矩阵）
func (m *denseMatrix) Kronecker(b Matrix) Matrix {
	br, bc := b.Rows(), b.Cols()
	out := &denseMatrix{
		rows: m.rows * br,
		cols: m.cols * bc,
		data: make([]complex128, m.rows*br*m.cols*bc),
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			aij := m.data[i*m.cols+j]
			if aij == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.data[(i*br+k)*out.cols+(j*bc+l)] = aij * b.Get(k, l)
				}
			}
		}
	}
	return out
}

// Scale 所有元素乘scalar
func (m *denseMatrix) Scale(scalar complex128) {
	for i := range m.data {
		m.data[i] *= scalar
	}
}

// Add 矩阵加法（自身 += b）
func (m *denseMatrix) Add(b Matrix) {
	if b.Rows() != m.rows || b.Cols() != m.cols {
		panic(fmt.Sprintf("dimension mismatch: %dx%d vs %dx%d", m.rows, m.cols, b.Rows(), b.Cols()))
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i*m.cols+j] += b.Get(i, j)
		}
	}
}

// NonZeroCount 统计非零元素数量
func (m *denseMatrix) NonZeroCount() int {
	count := 0
	for _, value := range m.data {
		if cmplx.Abs(value) > Epsilon {
			count++
		}
	}
	return count
}

// String 格式化输出矩阵
func (m *denseMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			value := m.data[i*m.cols+j]
			sb.WriteString(fmt.Sprintf("%8.4f%+8.4fi ", real(value), imag(value)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
