package maths

// 补充必要常量（浮点精度阈值）
const Epsilon = 1e-16

// Vector 复数向量接口
// 定义截断Fock基下态矢量的基本操作
type Vector interface {
	// 基础属性方法
	Length() int    // 获取向量长度
	String() string // 格式化字符串输出

	// 数据访问方法
	Get(index int) complex128        // 获取指定索引元素值
	Set(index int, value complex128) // 设置指定索引元素值

	// 数据操作和转换方法
	ToDense() []complex128 // 转换为稠密切片

	// 数据修改方法
	Zero()         // 清空向量为零向量
	Copy(a Vector) // 复制自身数据到目标向量a

	// 数学运算方法
	DotProduct(other Vector) complex128 // 内积<v|w>（对自身取共轭）
	Scale(scalar complex128)            // 向量缩放（所有元素乘scalar）
	Add(other Vector)                   // 向量加法（自身 += 另一个向量）
	Norm() float64                      // 欧几里得范数

	// 统计方法
	NonZeroCount() int // 统计非零元素数量
}

// Matrix 复数矩阵接口
// 定义截断Fock基下幺正矩阵的基本操作
type Matrix interface {
	// 基础属性方法
	Rows() int      // 获取矩阵行数
	Cols() int      // 获取矩阵列数
	String() string // 格式化字符串输出
	IsSquare() bool // 判断是否为方阵（行数=列数）

	// 数据访问方法
	Get(row, col int) complex128          // 获取指定行列元素值
	Set(row, col int, value complex128)   // 设置指定行列元素值
	Slice(r0, r1, c0, c1 int) Matrix      // 复制子矩阵 [r0,r1)×[c0,c1)
	Column(col int) Vector                // 复制指定列
	ColumnNorm(col int, rows int) float64 // 指定列前rows个元素的欧几里得范数

	// 数据操作和转换方法
	ToDense() Vector // 转换为稠密向量（行优先展开）

	// 数据修改方法
	Zero()                   // 清空矩阵为零矩阵
	Copy(a Matrix)           // 复制自身数据到目标矩阵a
	SwapRows(row1, row2 int) // 交换两行

	// 数学运算方法
	MatrixVectorMultiply(x Vector) Vector // 矩阵向量乘法（返回A*x）
	MatrixMultiply(b Matrix) Matrix       // 矩阵乘法（返回A*B）
	ConjugateTranspose() Matrix           // 共轭转置A†
	Kronecker(b Matrix) Matrix            // 克罗内克积A⊗B
	Scale(scalar complex128)              // 所有元素乘scalar
	Add(b Matrix)                         // 矩阵加法（自身 += b）

	// 统计方法
	NonZeroCount() int // 统计非零元素数量
}

// LU 接口定义了复数 LU 分解和求解线性方程组的操作。
type LU interface {
	Decompose(matrix Matrix) error // 对输入方阵执行LU分解（PA=LU）
	SolveReuse(b, x Vector) error  // 重用向量求解Ax=b（利用LU分解结果）
}
