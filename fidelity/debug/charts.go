package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 截断扫描误差曲线
	lineEps := charts.NewLine()
	lineEps.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "截断误差曲线",
			Subtitle: fmt.Sprintf("列范数偏差随仿真截断变化（阈值 %g，最小安全截断 %d）", c.Precision, c.MinCutoff),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "仿真截断 n",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(true),
	)
	{
		items := make([]opts.LineData, len(c.Eps))
		threshold := make([]opts.LineData, len(c.Eps))
		for i, eps := range c.Eps {
			items[i] = opts.LineData{Value: eps}
			threshold[i] = opts.LineData{Value: c.Precision}
		}
		lineEps.SetXAxis(c.Cutoffs).
			AddSeries("最大偏差", items).
			AddSeries("精度阈值", threshold)
	}

	// 蒙特卡洛收敛曲线
	lineFid := charts.NewLine()
	lineFid.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "保真度收敛曲线",
			Subtitle: "蒙特卡洛估计随样本数逼近闭式平均保真度",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "样本数",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(true),
	)
	{
		sampled := make([]opts.LineData, len(c.Sampled))
		exact := make([]opts.LineData, len(c.Sampled))
		for i, value := range c.Sampled {
			sampled[i] = opts.LineData{Value: value}
			exact[i] = opts.LineData{Value: c.Exact}
		}
		lineFid.SetXAxis(c.Samples).
			AddSeries("蒙特卡洛估计", sampled).
			AddSeries("闭式平均保真度", exact)
	}

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineEps,
		lineFid,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}

func (c *Charts) Error(err error) { log.Println(err) }
