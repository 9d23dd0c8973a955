package debug

import (
	"encoding/json"
	"io"
	"log"

	"qfock/fidelity"
)

// Record 记录分析历史状态
type Record struct {
	Cutoffs   []int     // 截断扫描横轴（n从cutoff递减）
	Eps       []float64 // 各截断的列范数最大偏差
	Precision float64   // 扫描使用的精度阈值
	MinCutoff int       // 最小安全截断
	Samples   []int     // 收敛曲线横轴（样本数）
	Sampled   []float64 // 各样本数的蒙特卡洛估计
	Exact     float64   // 闭式平均保真度（估计量的极限）
}

// AddSweep 记录截断扫描结果
func (list *Record) AddSweep(sweep *fidelity.SweepResult) {
	list.Precision = sweep.Precision
	list.MinCutoff = sweep.MinCutoff
	for _, point := range sweep.Points {
		list.Cutoffs = append(list.Cutoffs, point.N)
		list.Eps = append(list.Eps, point.Eps)
	}
}

// AddConvergence 记录蒙特卡洛收敛数据
func (list *Record) AddConvergence(points []fidelity.ConvergencePoint) {
	for _, point := range points {
		list.Samples = append(list.Samples, point.Samples)
		list.Sampled = append(list.Sampled, point.Sampled)
		list.Exact = point.Exact
	}
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func (list *Record) Error(err error) { log.Println(err) }
