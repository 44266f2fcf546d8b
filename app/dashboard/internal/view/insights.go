package view

import (
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// InsightsPlaceholder 没有分析建议时展示的文字
const InsightsPlaceholder = "暂无分析建议。"

// InsightBlock 一条分析建议，文本按原样输出
type InsightBlock struct {
	Title      string `json:"title"`
	Context    string `json:"context"`
	Suggestion string `json:"suggestion"`
}

type InsightsView struct {
	Placeholder string         `json:"placeholder,omitempty"`
	Blocks      []InsightBlock `json:"blocks"`
}

// BuildInsights 为空时只有占位文字，否则每条建议一块
func BuildInsights(insights []domain.InsightRecord) InsightsView {
	if len(insights) == 0 {
		return InsightsView{Placeholder: InsightsPlaceholder, Blocks: []InsightBlock{}}
	}
	blocks := make([]InsightBlock, 0, len(insights))
	for _, in := range insights {
		blocks = append(blocks, InsightBlock{
			Title:      in.Title,
			Context:    in.Context,
			Suggestion: in.Suggestion,
		})
	}
	return InsightsView{Blocks: blocks}
}

// RenderInsights 替换目标中的全部建议
func RenderInsights(doc *Document, target string, insights []domain.InsightRecord) error {
	return doc.ReplaceInsights(target, BuildInsights(insights))
}
