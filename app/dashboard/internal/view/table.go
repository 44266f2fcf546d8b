package view

import (
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// TableRow 明细表中的一行
type TableRow struct {
	Keyword  string `json:"keyword"`
	Traffic  string `json:"traffic"`
	Category string `json:"category"`
	StyleTag string `json:"styleTag"`
	Score    string `json:"score"`
}

type TableView struct {
	Rows []TableRow `json:"rows"`
}

// BuildTable 每条记录一行，保持输入顺序
func BuildTable(records []domain.DisplayRecord) TableView {
	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{
			Keyword:  r.Keyword,
			Traffic:  r.Traffic,
			Category: r.Category,
			StyleTag: r.StyleTag,
			Score:    r.ScoreText,
		})
	}
	return TableView{Rows: rows}
}

// RenderTable 用新的行替换目标表格的全部行
func RenderTable(doc *Document, target string, records []domain.DisplayRecord) error {
	return doc.ReplaceTable(target, BuildTable(records))
}
