package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/biz"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/repo"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/view"
)

// 页面提示文字
const (
	NoticeLoadFailed  = "数据加载失败，暂无趋势数据。"
	NoticeEmptyTrends = "暂无趋势数据，请先运行爬虫脚本。"

	lastUpdatedPrefix  = "更新于: "
	lastUpdatedUnknown = "未知"
)

// ErrPageStarted 同一个页面只能运行一次
var ErrPageStarted = errors.New("page already started")

// PageState 页面生命周期状态
type PageState int32

const (
	StateIdle PageState = iota
	StateLoading
	StateRendered
	StateFailed
)

func (s PageState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// DashboardUseCase 看板业务逻辑，每次页面请求创建一个新的 Page
type DashboardUseCase struct {
	repo       repo.SnapshotRepo
	normalizer *biz.Normalizer
	charts     *biz.ChartBuilder
	strict     bool
	targets    []string
	log        *log.Helper
	logger     log.Logger
}

// NewDashboardUseCase 创建看板业务逻辑实例
func NewDashboardUseCase(repo repo.SnapshotRepo, normalizer *biz.Normalizer, charts *biz.ChartBuilder,
	c *conf.Dashboard, logger log.Logger) *DashboardUseCase {
	uc := &DashboardUseCase{
		repo:       repo,
		normalizer: normalizer,
		charts:     charts,
		log:        log.NewHelper(logger),
		logger:     logger,
	}
	if c != nil {
		uc.strict = c.Strict
		uc.targets = append([]string(nil), c.Targets...)
	}
	return uc
}

// NewPage 创建一个空闲状态的页面
func (uc *DashboardUseCase) NewPage() *Page {
	return &Page{
		uc:  uc,
		doc: view.NewDocument(uc.strict, uc.logger, uc.targets...),
	}
}

// Render 创建页面并运行一次
func (uc *DashboardUseCase) Render(ctx context.Context) (*Page, error) {
	p := uc.NewPage()
	return p, p.Run(ctx)
}

// Page 一次页面生命周期：一个文档加一次加载渲染
type Page struct {
	uc      *DashboardUseCase
	doc     *view.Document
	state   atomic.Int32
	started atomic.Bool
	loadErr error
}

func (p *Page) State() PageState {
	return PageState(p.state.Load())
}

// LoadError 加载失败的原因，只在 Run 返回后读取
func (p *Page) LoadError() error {
	return p.loadErr
}

func (p *Page) Document() *view.Document {
	return p.doc
}

// View 导出带状态的只读视图
func (p *Page) View() view.PageView {
	pv := p.doc.Snapshot()
	pv.State = p.State().String()
	return pv
}

// Run 加载快照并把各个部分渲染到文档
//
// 加载失败只会让页面进入 Failed 并展示提示，不返回错误。
// 返回的错误只来自渲染，即严格模式下的未绑定目标。
func (p *Page) Run(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return ErrPageStarted
	}
	p.state.Store(int32(StateLoading))

	if warning := p.uc.repo.ServingWarning(); warning != "" {
		p.doc.AddNotice(warning)
	}

	snap, err := p.uc.repo.Load(ctx)
	if err != nil {
		p.uc.log.WithContext(ctx).Errorf("load snapshot from %s: %v", p.uc.repo.Location(), err)
		p.loadErr = err
		p.doc.AddNotice(NoticeLoadFailed)
		p.state.Store(int32(StateFailed))
		return nil
	}

	if err := p.render(ctx, snap); err != nil {
		p.state.Store(int32(StateFailed))
		return err
	}
	p.state.Store(int32(StateRendered))
	return nil
}

func (p *Page) render(ctx context.Context, snap *domain.TrendSnapshot) error {
	records := p.uc.normalizer.NormalizeAll(snap.Trends)
	if len(records) == 0 {
		p.doc.AddNotice(NoticeEmptyTrends)
	}

	lastUpdated := snap.LastUpdated
	if lastUpdated == "" {
		lastUpdated = lastUpdatedUnknown
	}

	// 各渲染器只写自己的目标，互不依赖
	var g errgroup.Group
	g.Go(func() error {
		return p.doc.SetText(view.TargetLastUpdated, lastUpdatedPrefix+lastUpdated)
	})
	g.Go(func() error {
		return view.RenderTable(p.doc, view.TargetTable, records)
	})
	g.Go(func() error {
		return p.doc.SetChart(view.TargetRankingChart, p.uc.charts.Ranking(records))
	})
	g.Go(func() error {
		return p.doc.SetChart(view.TargetDistributionChart, p.uc.charts.Distribution(snap.CategoryStats))
	})
	g.Go(func() error {
		return view.RenderInsights(p.doc, view.TargetInsights, snap.Insights)
	})
	if err := g.Wait(); err != nil {
		p.uc.log.WithContext(ctx).Errorf("render dashboard: %v", err)
		return err
	}

	p.uc.log.WithContext(ctx).Infof("dashboard rendered: %d trends, %d categories, %d insights",
		len(records), len(snap.CategoryStats), len(snap.Insights))
	return nil
}
