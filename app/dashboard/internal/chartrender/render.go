package chartrender

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// ErrEmptyChart 图表没有可绘制的数据
var ErrEmptyChart = errors.New("chart has no data")

// Format 输出格式
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

const (
	defaultWidth  = 800
	defaultHeight = 480
)

var fallbackColor = drawing.Color{R: 76, G: 175, B: 80, A: 255}

// ContentType 格式对应的 MIME 类型
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Render 把图表描述绘制成图片
//
// 空描述返回 ErrEmptyChart，不写入任何内容。
func Render(spec domain.ChartSpec, format Format, w io.Writer) error {
	if spec.IsEmpty() {
		return ErrEmptyChart
	}
	var err error
	switch spec.Type {
	case domain.ChartBar:
		err = renderBar(spec, format, w)
	case domain.ChartPie:
		err = renderPie(spec, format, w)
	default:
		return fmt.Errorf("unsupported chart type %q", spec.Type)
	}
	if err != nil {
		return fmt.Errorf("render %s chart: %w", spec.Type, err)
	}
	return nil
}

func renderBar(spec domain.ChartSpec, format Format, w io.Writer) error {
	fill := fallbackColor
	if len(spec.Options.Colors) > 0 {
		fill = ParseColor(spec.Options.Colors[0])
	}
	stroke := ParseColor(spec.Options.BorderColor)

	maxValue := 0.0
	bars := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		if v > maxValue {
			maxValue = v
		}
		bars = append(bars, chart.Value{
			Label: label(spec.Labels, i),
			Value: v,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: stroke,
				StrokeWidth: float64(spec.Options.BorderWidth),
			},
		})
	}
	if maxValue <= 0 {
		maxValue = 1
	} else {
		maxValue *= 1.1
	}

	ch := chart.BarChart{
		Title:      spec.Options.Title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		BarWidth:   barWidth(len(bars)),
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: bars,
	}
	return ch.Render(format.provider(), w)
}

func renderPie(spec domain.ChartSpec, format Format, w io.Writer) error {
	values := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		// 零值扇区不可见，绘制引擎也不接受
		if v <= 0 {
			continue
		}
		var fill drawing.Color
		if n := len(spec.Options.Colors); n > 0 {
			fill = ParseColor(spec.Options.Colors[i%n])
		} else {
			fill = chart.GetDefaultColor(i)
		}
		values = append(values, chart.Value{
			Label: label(spec.Labels, i),
			Value: v,
			Style: chart.Style{FillColor: fill},
		})
	}
	if len(values) == 0 {
		return ErrEmptyChart
	}

	ch := chart.PieChart{
		Title:  spec.Options.Title,
		Width:  defaultHeight,
		Height: defaultHeight,
		Values: values,
	}
	return ch.Render(format.provider(), w)
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func barWidth(n int) int {
	if n <= 0 {
		return 40
	}
	w := (defaultWidth - 120) / n / 2
	if w > 60 {
		w = 60
	}
	if w < 8 {
		w = 8
	}
	return w
}

// ParseColor 解析 "#rrggbb" 或 "rgba(r, g, b, a)"，无法识别时返回默认绿色
func ParseColor(s string) drawing.Color {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 4):
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
	case strings.HasPrefix(s, "rgba("):
		var r, g, b uint8
		var a float64
		if _, err := fmt.Sscanf(s, "rgba(%d, %d, %d, %g)", &r, &g, &b, &a); err == nil {
			return drawing.Color{R: r, G: g, B: b, A: alpha(a)}
		}
	case strings.HasPrefix(s, "rgb("):
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err == nil {
			return drawing.Color{R: r, G: g, B: b, A: 255}
		}
	}
	return fallbackColor
}

func alpha(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(a*255 + 0.5)
}
