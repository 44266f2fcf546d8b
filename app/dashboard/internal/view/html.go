package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/dashboard.html
var templates embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").
	Funcs(template.FuncMap{"trusted": trusted}).
	ParseFS(templates, "templates/dashboard.html"))

// trusted 分析建议的文本来自快照生产者，按原样作为标记输出。
// 快照来源不可信时，调用方必须在加载后自行清洗。
func trusted(s string) template.HTML {
	return template.HTML(s)
}

// WriteHTML 把页面视图渲染成完整的 HTML 页面
func WriteHTML(w io.Writer, pv PageView) error {
	if err := pageTemplate.Execute(w, pv); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}
	return nil
}
