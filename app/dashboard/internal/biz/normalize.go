package biz

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// 默认的领域样式
const (
	StyleTech    = "cat-tech"
	StyleSports  = "cat-sports"
	StyleFinance = "cat-finance"
	StyleOther   = "cat-other"
)

// TrafficUnavailable 快照没有提供流量时的展示值
const TrafficUnavailable = "N/A"

// DefaultCategoryStyles 领域到样式的默认映射，按字符串精确匹配
func DefaultCategoryStyles() map[string]string {
	return map[string]string{
		"科技/AI": StyleTech,
		"体育":    StyleSports,
		"金融/商业": StyleFinance,
	}
}

// Normalizer 把快照记录转换为展示记录，无状态
type Normalizer struct {
	styles   map[string]string
	fallback string
}

// NewNormalizer 根据配置创建，未配置时使用默认映射
func NewNormalizer(c *conf.Dashboard, logger log.Logger) *Normalizer {
	n := &Normalizer{
		styles:   DefaultCategoryStyles(),
		fallback: StyleOther,
	}
	if c == nil {
		return n
	}
	if len(c.Categories) > 0 {
		n.styles = make(map[string]string, len(c.Categories))
		for cat, style := range c.Categories {
			if style == "" {
				log.NewHelper(logger).Warnf("category %q has no style, using fallback", cat)
				continue
			}
			n.styles[cat] = style
		}
	}
	if c.FallbackStyle != "" {
		n.fallback = c.FallbackStyle
	}
	return n
}

// Classify 领域到样式，未知领域（包括空串）落到兜底样式
func (n *Normalizer) Classify(category string) string {
	if style, ok := n.styles[category]; ok {
		return style
	}
	return n.fallback
}

// Normalize 单条记录的归一化，纯函数
func (n *Normalizer) Normalize(rec domain.TrendRecord) domain.DisplayRecord {
	return domain.DisplayRecord{
		Keyword:   rec.Keyword,
		Traffic:   DisplayTraffic(rec.Traffic),
		Category:  rec.Category,
		StyleTag:  n.Classify(rec.Category),
		ScoreText: FormatScore(rec.Score),
		Score:     rec.Score,
	}
}

// NormalizeAll 按输入顺序归一化全部记录
func (n *Normalizer) NormalizeAll(records []domain.TrendRecord) []domain.DisplayRecord {
	out := make([]domain.DisplayRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, n.Normalize(rec))
	}
	return out
}

// DisplayTraffic 数值流量格式化，预格式化字符串原样返回
func DisplayTraffic(t domain.Traffic) string {
	switch t.Kind {
	case domain.TrafficNumeric:
		return FormatTraffic(t.Numeric)
	case domain.TrafficText:
		return t.Text
	default:
		return TrafficUnavailable
	}
}

// FormatTraffic 一万及以上按万取整加 "万+"，否则加 "+"
func FormatTraffic(n int64) string {
	if n < 0 {
		n = 0
	}
	if n >= 10000 {
		return strconv.FormatInt(n/10000, 10) + "万+"
	}
	return strconv.FormatInt(n, 10) + "+"
}

// FormatScore 千分位分组，最多保留三位小数
func FormatScore(score float64) string {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return strconv.FormatFloat(score, 'f', -1, 64)
	}
	rounded := math.Round(score*1000) / 1000
	if rounded == math.Trunc(rounded) && math.Abs(rounded) < 1e18 {
		return humanize.Comma(int64(rounded))
	}
	return humanize.Commaf(rounded)
}
