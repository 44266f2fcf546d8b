package domain

// TrafficKind 流量字段的来源形态
type TrafficKind int

const (
	// TrafficUnknown 快照未提供流量
	TrafficUnknown TrafficKind = iota
	// TrafficNumeric 原始数值，由本系统格式化
	TrafficNumeric
	// TrafficText 生产者已格式化好的字符串，原样展示
	TrafficText
)

func (k TrafficKind) String() string {
	switch k {
	case TrafficNumeric:
		return "numeric"
	case TrafficText:
		return "text"
	default:
		return "unknown"
	}
}

// Traffic 流量的两种互斥形态
type Traffic struct {
	Kind    TrafficKind
	Numeric int64
	Text    string
}

// NumericTraffic 构造原始数值流量
func NumericTraffic(n int64) Traffic {
	if n < 0 {
		n = 0
	}
	return Traffic{Kind: TrafficNumeric, Numeric: n}
}

// TextTraffic 构造预格式化流量
func TextTraffic(s string) Traffic {
	return Traffic{Kind: TrafficText, Text: s}
}

// TrendRecord 单个关键词的趋势数据
type TrendRecord struct {
	Keyword  string
	Traffic  Traffic
	Category string
	Score    float64
}

// CategoryCount 领域统计中的一项
type CategoryCount struct {
	Name  string
	Count float64
}

// CategoryStats 领域统计，保持快照中的键顺序
type CategoryStats []CategoryCount

// Total 所有领域计数之和
func (s CategoryStats) Total() float64 {
	var total float64
	for _, c := range s {
		total += c.Count
	}
	return total
}

// InsightRecord 分析建议
//
// 三个字段都按原样渲染，可能包含标记，调用方负责对不可信的快照做清洗。
type InsightRecord struct {
	Title      string
	Context    string
	Suggestion string
}

// TrendSnapshot 外部聚合任务产出的快照，加载后只读
type TrendSnapshot struct {
	LastUpdated   string
	Trends        []TrendRecord
	CategoryStats CategoryStats
	Insights      []InsightRecord
	// Dropped 解析时被丢弃的畸形记录数
	Dropped int
}
