package view

import (
	"sync"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// 宿主页面提供的渲染目标
const (
	TargetTable             = "trends-table"
	TargetLastUpdated       = "last-updated"
	TargetRankingChart      = "weightChart"
	TargetDistributionChart = "categoryChart"
	TargetInsights          = "insights-container"
)

// ReasonRenderTargetMissing 渲染目标未绑定
const ReasonRenderTargetMissing = "RENDER_TARGET_MISSING"

// DefaultTargets 完整页面绑定的全部目标
func DefaultTargets() []string {
	return []string{TargetTable, TargetLastUpdated, TargetRankingChart, TargetDistributionChart, TargetInsights}
}

func ErrRenderTargetMissing(id string) *errors.Error {
	return errors.InternalServer(ReasonRenderTargetMissing, "render target "+id+" is not bound").
		WithMetadata(map[string]string{"target": id})
}

func IsRenderTargetMissing(err error) bool {
	return err != nil && errors.Reason(err) == ReasonRenderTargetMissing
}

// Document 一次页面生命周期内的渲染结果，是唯一会被修改的 UI 状态
//
// 渲染器可以并发写入不同目标。写入未绑定的目标时，严格模式返回错误，
// 否则记录日志后忽略。
type Document struct {
	mu       sync.RWMutex
	strict   bool
	log      *log.Helper
	targets  []string
	bound    map[string]bool
	texts    map[string]string
	tables   map[string]TableView
	charts   map[string]domain.ChartSpec
	insights map[string]InsightsView
	notices  []string
}

// NewDocument 创建文档，targets 为空时绑定全部默认目标
func NewDocument(strict bool, logger log.Logger, targets ...string) *Document {
	if len(targets) == 0 {
		targets = DefaultTargets()
	}
	d := &Document{
		strict:   strict,
		log:      log.NewHelper(logger),
		targets:  append([]string(nil), targets...),
		bound:    make(map[string]bool, len(targets)),
		texts:    make(map[string]string),
		tables:   make(map[string]TableView),
		charts:   make(map[string]domain.ChartSpec),
		insights: make(map[string]InsightsView),
	}
	for _, id := range targets {
		d.bound[id] = true
	}
	return d
}

// Has 目标是否已绑定
func (d *Document) Has(id string) bool {
	return d.bound[id]
}

func (d *Document) missing(id string) error {
	err := ErrRenderTargetMissing(id)
	if d.strict {
		return err
	}
	d.log.Warnf("skip rendering: %v", err)
	return nil
}

// SetText 替换文本目标的内容
func (d *Document) SetText(id, text string) error {
	if !d.Has(id) {
		return d.missing(id)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts[id] = text
	return nil
}

// ReplaceTable 清空旧行后写入新行
func (d *Document) ReplaceTable(id string, t TableView) error {
	if !d.Has(id) {
		return d.missing(id)
	}
	rows := make([]TableRow, len(t.Rows))
	copy(rows, t.Rows)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables[id] = TableView{Rows: rows}
	return nil
}

// SetChart 绑定图表描述，空描述同样写入，绘制端负责跳过
func (d *Document) SetChart(id string, spec domain.ChartSpec) error {
	if !d.Has(id) {
		return d.missing(id)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.charts[id] = spec
	return nil
}

// ReplaceInsights 清空旧内容后写入新的建议块
func (d *Document) ReplaceInsights(id string, v InsightsView) error {
	if !d.Has(id) {
		return d.missing(id)
	}
	blocks := make([]InsightBlock, len(v.Blocks))
	copy(blocks, v.Blocks)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.insights[id] = InsightsView{Placeholder: v.Placeholder, Blocks: blocks}
	return nil
}

// AddNotice 追加一条页面级提示
func (d *Document) AddNotice(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, msg)
}

// Snapshot 导出当前内容的只读副本
func (d *Document) Snapshot() PageView {
	d.mu.RLock()
	defer d.mu.RUnlock()

	pv := PageView{
		Targets:  append([]string(nil), d.targets...),
		Notices:  append([]string(nil), d.notices...),
		Texts:    make(map[string]string, len(d.texts)),
		Tables:   make(map[string]TableView, len(d.tables)),
		Charts:   make(map[string]domain.ChartSpec, len(d.charts)),
		Insights: make(map[string]InsightsView, len(d.insights)),
	}
	for k, v := range d.texts {
		pv.Texts[k] = v
	}
	for k, v := range d.tables {
		pv.Tables[k] = v
	}
	for k, v := range d.charts {
		pv.Charts[k] = v
	}
	for k, v := range d.insights {
		pv.Insights[k] = v
	}
	return pv
}

// PageView 文档的只读视图，供 HTML 模板和 JSON 接口使用
type PageView struct {
	State    string                      `json:"state"`
	Targets  []string                    `json:"targets"`
	Notices  []string                    `json:"notices"`
	Texts    map[string]string           `json:"texts"`
	Tables   map[string]TableView        `json:"tables"`
	Charts   map[string]domain.ChartSpec `json:"charts"`
	Insights map[string]InsightsView     `json:"insights"`
}

func (p PageView) Has(id string) bool {
	for _, t := range p.Targets {
		if t == id {
			return true
		}
	}
	return false
}

func (p PageView) Text(id string) string {
	return p.Texts[id]
}

func (p PageView) Table(id string) TableView {
	return p.Tables[id]
}

func (p PageView) Chart(id string) domain.ChartSpec {
	return p.Charts[id]
}

// Drawable 目标上有可绘制的图表
func (p PageView) Drawable(id string) bool {
	spec, ok := p.Charts[id]
	return ok && !spec.IsEmpty()
}

func (p PageView) Insight(id string) InsightsView {
	return p.Insights[id]
}
