package biz

import (
	"sort"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// DefaultTopN 排名图默认展示的条数
const DefaultTopN = 10

// 排名图样式
const (
	RankingSeriesLabel = "权重分"
	RankingFill        = "rgba(76, 175, 80, 0.6)"
	RankingBorder      = "rgba(76, 175, 80, 1)"
)

// minPaletteSize 调色板至少需要的颜色数
const minPaletteSize = 5

// DefaultPalette 领域分布图的默认调色板
func DefaultPalette() []string {
	return []string{"#1976d2", "#d84315", "#2e7d32", "#7b1fa2", "#fbc02d"}
}

// ChartBuilder 构建排名图和分布图
type ChartBuilder struct {
	topN        int
	sortByScore bool
	palette     []string
}

func NewChartBuilder(c *conf.Dashboard, logger log.Logger) *ChartBuilder {
	b := &ChartBuilder{topN: DefaultTopN, palette: DefaultPalette()}
	if c == nil {
		return b
	}
	if c.TopN > 0 {
		b.topN = int(c.TopN)
	}
	if c.Ranking != nil {
		b.sortByScore = c.Ranking.SortByScore
	}
	switch {
	case len(c.Palette) >= minPaletteSize:
		b.palette = append([]string(nil), c.Palette...)
	case len(c.Palette) > 0:
		log.NewHelper(logger).Warnf("palette has %d colors, need at least %d; using default", len(c.Palette), minPaletteSize)
	}
	return b
}

// Ranking 按配置构建排名图
func (b *ChartBuilder) Ranking(records []domain.DisplayRecord) domain.ChartSpec {
	if b.sortByScore {
		records = SortByScore(records)
	}
	return BuildRankingChart(records, b.topN)
}

// Distribution 按配置构建分布图
func (b *ChartBuilder) Distribution(stats domain.CategoryStats) domain.ChartSpec {
	return BuildDistributionChart(stats, b.palette)
}

// BuildRankingChart 取前 topN 条记录生成横向柱状图
//
// 不重新排序，依赖上游已按分数降序排列。topN <= 0 时使用 DefaultTopN。
func BuildRankingChart(records []domain.DisplayRecord, topN int) domain.ChartSpec {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(records) < topN {
		topN = len(records)
	}

	spec := domain.ChartSpec{
		Type:   domain.ChartBar,
		Labels: make([]string, 0, topN),
		Values: make([]float64, 0, topN),
		Options: domain.ChartOptions{
			SeriesLabel: RankingSeriesLabel,
			IndexAxis:   "y",
			Colors:      []string{RankingFill},
			BorderColor: RankingBorder,
			BorderWidth: 1,
			Responsive:  true,
			Legend:      domain.LegendOptions{Display: false},
		},
	}
	for _, rec := range records[:topN] {
		spec.Labels = append(spec.Labels, rec.Keyword)
		spec.Values = append(spec.Values, rec.Score)
	}
	return spec
}

// BuildDistributionChart 每个领域一块扇区，颜色按下标循环取调色板
func BuildDistributionChart(stats domain.CategoryStats, palette []string) domain.ChartSpec {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}

	spec := domain.ChartSpec{
		Type:   domain.ChartPie,
		Labels: make([]string, 0, len(stats)),
		Values: make([]float64, 0, len(stats)),
		Options: domain.ChartOptions{
			Colors:     make([]string, 0, len(stats)),
			Responsive: true,
			Legend:     domain.LegendOptions{Display: true, Position: "bottom"},
		},
	}
	for i, c := range stats {
		spec.Labels = append(spec.Labels, c.Name)
		spec.Values = append(spec.Values, c.Count)
		spec.Options.Colors = append(spec.Options.Colors, palette[i%len(palette)])
	}
	return spec
}

// SortByScore 返回按分数降序的稳定排序副本
func SortByScore(records []domain.DisplayRecord) []domain.DisplayRecord {
	sorted := append([]domain.DisplayRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}
