package data

import (
	"net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
)

type Data struct {
	source Source
}

// NewData 创建基于 HTTP 的数据层，配置了 qps 时对上游限流
func NewData(c *conf.Snapshot, logger log.Logger) (*Data, func(), error) {
	client := resty.New().SetTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment,
	})

	var userAgent string
	var src Source
	if c != nil {
		userAgent = c.UserAgent
	}
	src = NewHTTPSource(client, userAgent)

	if c != nil && c.Qps > 0 {
		burst := int(c.Burst)
		if burst < 1 {
			burst = 1
		}
		src = NewThrottledSource(src, rate.NewLimiter(rate.Limit(c.Qps), burst))
		log.NewHelper(logger).Infof("snapshot source throttled: qps=%.2f burst=%d", c.Qps, burst)
	}

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		client.GetClient().CloseIdleConnections()
	}
	return &Data{source: src}, cleanup, nil
}

// NewDataWithSource 使用给定的来源，主要用于本地文件和测试
func NewDataWithSource(src Source) *Data {
	return &Data{source: src}
}
