package server

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/service"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/view"
)

// 对外路由
const (
	RouteIndex     = "/"
	RouteDashboard = "/api/dashboard"
	RouteHealthz   = "/healthz"
	chartPrefix    = "/charts/"
)

func NewHTTPServer(c *conf.Server, s *service.DashboardService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	r := srv.Route("/")
	r.GET(RouteIndex, withMiddleware(s.Index))
	r.GET(RouteDashboard, withMiddleware(s.Dashboard))
	r.GET(RouteHealthz, withMiddleware(s.Healthz))
	for _, target := range []string{view.TargetRankingChart, view.TargetDistributionChart} {
		r.GET(chartPrefix+target+".png", withMiddleware(s.Chart(target)))
	}
	return srv
}

// withMiddleware 让原生 handler 经过服务端中间件（recovery、logging）
func withMiddleware(h nethttp.HandlerFunc) http.HandlerFunc {
	return func(ctx http.Context) error {
		next := ctx.Middleware(func(context.Context, interface{}) (interface{}, error) {
			h(ctx.Response(), ctx.Request())
			return nil, nil
		})
		_, err := next(ctx, ctx.Request())
		return err
	}
}
