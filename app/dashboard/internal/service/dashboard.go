package service

import (
	"bytes"
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/go-kratos/kratos/v2/encoding/json"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/chartrender"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/usecase"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/view"
)

type DashboardService struct {
	uc      *usecase.DashboardUseCase
	timeout time.Duration
	codec   encoding.Codec
	log     *log.Helper
}

func NewDashboardService(uc *usecase.DashboardUseCase, c *conf.Snapshot, logger log.Logger) *DashboardService {
	s := &DashboardService{
		uc:    uc,
		codec: encoding.GetCodec(json.Name),
		log:   log.NewHelper(logger),
	}
	if c != nil && c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			s.log.Warnf("invalid snapshot timeout %q: %v", c.Timeout, err)
		} else {
			s.timeout = d
		}
	}
	return s
}

// render 每个请求一个独立的页面生命周期
func (s *DashboardService) render(ctx context.Context) (*usecase.Page, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.uc.Render(ctx)
}

// Index 返回渲染好的看板页面
func (s *DashboardService) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	page, err := s.render(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := view.WriteHTML(&buf, page.View()); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Dashboard 以 JSON 返回页面视图
func (s *DashboardService) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	page, err := s.render(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	body, err := s.codec.Marshal(page.View())
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// Chart 返回指定目标的 PNG 图片，没有数据时返回 204
func (s *DashboardService) Chart(target string) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		page, err := s.render(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}

		var buf bytes.Buffer
		err = chartrender.Render(page.View().Chart(target), chartrender.PNG, &buf)
		if errors.Is(err, chartrender.ErrEmptyChart) {
			w.WriteHeader(nethttp.StatusNoContent)
			return
		}
		if err != nil {
			s.fail(w, err)
			return
		}
		w.Header().Set("Content-Type", chartrender.PNG.ContentType())
		_, _ = w.Write(buf.Bytes())
	}
}

// Healthz 存活检查
func (s *DashboardService) Healthz(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *DashboardService) fail(w nethttp.ResponseWriter, err error) {
	s.log.Errorf("dashboard request failed: %v", err)
	nethttp.Error(w, nethttp.StatusText(nethttp.StatusInternalServerError), nethttp.StatusInternalServerError)
}
