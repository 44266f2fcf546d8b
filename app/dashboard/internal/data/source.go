package data

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Source 按地址取回快照原始字节
type Source interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// HTTPSource 通过 HTTP 拉取快照，每次只发一个请求，不重试
type HTTPSource struct {
	client    *resty.Client
	userAgent string
}

var _ Source = (*HTTPSource)(nil)

func NewHTTPSource(client *resty.Client, userAgent string) *HTTPSource {
	return &HTTPSource{client: client, userAgent: userAgent}
}

func (s *HTTPSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	req := s.client.R().SetContext(ctx).SetHeader("Accept", "application/json")
	if s.userAgent != "" {
		req.SetHeader("User-Agent", s.userAgent)
	}

	resp, err := req.Get(location)
	if err != nil {
		return nil, ErrTransport(location, err)
	}
	if !resp.IsSuccess() {
		return nil, ErrHTTPStatus(location, resp.StatusCode())
	}
	return resp.Body(), nil
}

// FileSource 从本地磁盘读取快照，供静态导出使用
type FileSource struct{}

var _ Source = FileSource{}

func (FileSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	// 只有 file: 地址按 URL 解析，普通路径原样交给文件系统
	path := location
	if isFileURL(location) {
		u, err := url.Parse(location)
		if err != nil {
			return nil, ErrTransport(location, err)
		}
		path = u.Path
	}
	if err := ctx.Err(); err != nil {
		return nil, ErrTransport(location, err)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrTransport(location, err)
	}
	return body, nil
}

// ThrottledSource 在请求上游前按令牌桶限流
type ThrottledSource struct {
	next    Source
	limiter *rate.Limiter
}

var _ Source = (*ThrottledSource)(nil)

func NewThrottledSource(next Source, limiter *rate.Limiter) *ThrottledSource {
	return &ThrottledSource{next: next, limiter: limiter}
}

func (s *ThrottledSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, ErrTransport(location, err)
	}
	return s.next.Fetch(ctx, location)
}

func isFileURL(location string) bool {
	return len(location) >= 5 && strings.EqualFold(location[:5], "file:")
}
