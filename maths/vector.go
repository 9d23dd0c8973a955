package maths

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// denseVector 稠密复数向量实现
type denseVector struct {
	data []complex128
}

// NewDenseVector 创建新的稠密向量
func NewDenseVector(length int) Vector {
	if length < 0 {
		panic("invalid vector length: cannot be negative")
	}
	return &denseVector{data: make([]complex128, length)}
}

// NewDenseVectorWithData 从现有数据创建稠密向量（不复制底层切片）
func NewDenseVectorWithData(data []complex128) Vector {
	return &denseVector{data: data}
}

// Length 获取向量长度
func (v *denseVector) Length() int {
	return len(v.data)
}

// Get 获取指定位置的元素值（越界panic）
func (v *denseVector) Get(index int) complex128 {
	if index < 0 || index >= len(v.data) {
		panic(fmt.Sprintf("vector index out of range: %d (length: %d)", index, len(v.data)))
	}
	return v.data[index]
}

// Set 设置指定位置的元素值（越界panic）
func (v *denseVector) Set(index int, value complex128) {
	if index < 0 || index >= len(v.data) {
		panic(fmt.Sprintf("vector index out of range: %d (length: %d)", index, len(v.data)))
	}
	v.data[index] = value
}

// ToDense 转换为稠密切片（返回副本）
func (v *denseVector) ToDense() []complex128 {
	out := make([]complex128, len(v.data))
	copy(out, v.data)
	return out
}

// Zero 清空向量为零向量
func (v *denseVector) Zero() {
	clear(v.data)
}

// Copy 复制自身数据到目标向量
func (v *denseVector) Copy(a Vector) {
	switch target := a.(type) {
	case *denseVector:
		// 同类型直接复制（高效）
		if len(target.data) != len(v.data) {
			panic(fmt.Sprintf("dimension mismatch: source length=%d, target length=%d", len(v.data), len(target.data)))
		}
		copy(target.data, v.data)
	default:
		// 异类型逐个元素复制
		for i, value := range v.data {
			a.Set(i, value)
		}
	}
}

// DotProduct 计算内积<v|w>（对自身元素取共轭）
func (v *denseVector) DotProduct(other Vector) complex128 {
	if other.Length() != len(v.data) {
		panic(fmt.Sprintf("vector dimension mismatch: %d vs %d", len(v.data), other.Length()))
	}
	var sum complex128
	for i, value := range v.data {
		sum += cmplx.Conj(value) * other.Get(i)
	}
	return sum
}

// Scale 向量缩放（所有元素乘scalar）
func (v *denseVector) Scale(scalar complex128) {
	for i := range v.data {
		v.data[i] *= scalar
	}
}

// Add 向量加法（自身 += 另一个向量）
func (v *denseVector) Add(other Vector) {
	if other.Length() != len(v.data) {
		panic(fmt.Sprintf("vector dimension mismatch: %d vs %d", len(v.data), other.Length()))
	}
	for i := range v.data {
		v.data[i] += other.Get(i)
	}
}

// Norm 欧几里得范数
func (v *denseVector) Norm() float64 {
	sum := 0.0
	for _, value := range v.data {
		re, im := real(value), imag(value)
		sum += re*re + im*im
	}
	return math.Sqrt(sum)
}

// NonZeroCount 统计非零元素数量
func (v *denseVector) NonZeroCount() int {
	count := 0
	for _, value := range v.data {
		if cmplx.Abs(value) > Epsilon {
			count++
		}
	}
	return count
}

// String 格式化输出向量
func (v *denseVector) String() string {
	var sb strings.Builder
	for _, value := range v.data {
		sb.WriteString(fmt.Sprintf("%8.4f%+8.4fi ", real(value), imag(value)))
	}
	sb.WriteString("\n")
	return sb.String()
}
