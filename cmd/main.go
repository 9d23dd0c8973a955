package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"qfock"
	"qfock/fidelity"
	"qfock/fidelity/debug"
	"qfock/gate"
)

func main() {

	const cutoff, gateCutoff = 10, 4
	src := rand.NewPCG(7, 13)

	// 三次相位门会向高Fock基矢泄漏幅度，适合观察最小截断
	V, err := gate.CubicPhase(0.01, cutoff, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	sweep, err := fidelity.Sweep(V, qfock.DefaultPrecision, gateCutoff, cutoff)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cubic phase: min cutoff %d (p=%g)\n", sweep.MinCutoff, sweep.Precision)
	fmt.Println(savePlot(sweep, "sweep.png"))

	// DFT门不泄漏，作为目标/学习对演示保真度
	V, err = gate.DFT(gateCutoff, cutoff)
	if err != nil {
		fmt.Println(err)
		return
	}
	U := V.Slice(0, cutoff, 0, gateCutoff)

	report, err := qfock.Analyze(V, U, cutoff, func(a *qfock.Analysis) {
		a.Samples = 2000
		a.Src = src
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("dft: modes=%d d=%d minCutoff=%d\n", report.Modes, report.GateCutoff, report.MinCutoff)
	fmt.Printf("dft: state=%.6f sampled=%.6f process=%.6f average=%.6f\n",
		report.StateFidelity, report.SampledFidelity, report.ProcessFidelity, report.AverageFidelity)

	conv, err := fidelity.Convergence(V, U, cutoff, []int{100, 300, 1000, 3000}, src)
	if err != nil {
		fmt.Println(err)
		return
	}
	charts := &debug.Charts{}
	charts.AddSweep(sweep)
	charts.AddConvergence(conv)
	f, err := os.Create("fidelity.html")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	fmt.Println(charts.Render(f))
}

// savePlot 绘制截断误差曲线并保存为PNG
func savePlot(sweep *fidelity.SweepResult, filename string) error {
	p := plot.New()
	p.Title.Text = "truncation error"
	p.X.Label.Text = "simulation cutoff n"
	p.Y.Label.Text = "max column norm deviation"

	pts := make(plotter.XYs, len(sweep.Points))
	for i, sp := range sweep.Points {
		pts[i].X = float64(sp.N)
		pts[i].Y = sp.Eps
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
