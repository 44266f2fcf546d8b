package domain

// DisplayRecord 归一化后可直接展示的趋势记录
type DisplayRecord struct {
	Keyword  string
	Traffic  string
	Category string
	StyleTag string
	// ScoreText 千分位格式化后的分数，仅用于展示
	ScoreText string
	// Score 原始分数，用于排名和图表
	Score float64
}

// ChartType 图表类型
type ChartType string

const (
	ChartBar ChartType = "bar"
	ChartPie ChartType = "pie"
)

// LegendOptions 图例配置
type LegendOptions struct {
	Display  bool   `json:"display"`
	Position string `json:"position,omitempty"`
}

// ChartOptions 与渲染引擎无关的样式选项
type ChartOptions struct {
	Title       string        `json:"title,omitempty"`
	SeriesLabel string        `json:"seriesLabel,omitempty"`
	IndexAxis   string        `json:"indexAxis,omitempty"`
	Colors      []string      `json:"colors"`
	BorderColor string        `json:"borderColor,omitempty"`
	BorderWidth int           `json:"borderWidth,omitempty"`
	Responsive  bool          `json:"responsive"`
	Legend      LegendOptions `json:"legend"`
}

// ChartSpec 声明式图表描述，交给外部图表引擎绘制
type ChartSpec struct {
	Type    ChartType    `json:"type"`
	Labels  []string     `json:"labels"`
	Values  []float64    `json:"values"`
	Options ChartOptions `json:"options"`
}

// IsEmpty 没有任何数据点
func (s ChartSpec) IsEmpty() bool {
	return len(s.Values) == 0
}
