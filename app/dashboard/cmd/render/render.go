package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/biz"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/chartrender"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/data"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/usecase"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/view"
	"github.com/LeeRHuang/googledailytreadsinfo123/internal/config"
	"github.com/LeeRHuang/googledailytreadsinfo123/internal/logger"
)

// EnvSnapshot 覆盖配置中的快照地址
const EnvSnapshot = "DASHBOARD_SNAPSHOT"

const (
	defaultConfPath = "app/dashboard/configs/render.yaml"
	pageFile        = "dashboard.html"
)

// run 渲染一次看板并写出静态文件，返回进程退出码
func run(args []string) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	confPath := fs.String("conf", defaultConfPath, "config path, eg: -conf render.yaml")
	snapshot := fs.String("snapshot", "", "snapshot path or url, overrides config and $"+EnvSnapshot)
	outDir := fs.String("out", "", "output directory, overrides config")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg, err := loadConfig(*confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法加载配置文件: %v\n", err)
		return 1
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	cfg.Snapshot.Location = snapshotLocation(*snapshot, os.Getenv(EnvSnapshot), cfg.Snapshot.Location)

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		return 1
	}

	page, err := render(context.Background(), cfg, logger.Log)
	if err != nil {
		logger.Log.Errorf("渲染失败: %v", err)
		return 1
	}
	if err := export(page.View(), cfg.Output.Dir, logger.Log); err != nil {
		logger.Log.Errorf("写出文件失败: %v", err)
		return 1
	}
	if page.State() == usecase.StateFailed {
		logger.Log.Errorf("快照加载失败: %v", page.LoadError())
		return 1
	}
	logger.Log.Infof("看板已生成: %s", filepath.Join(cfg.Output.Dir, pageFile))
	return 0
}

// loadConfig 默认配置文件不存在时使用内置默认值
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil && path == defaultConfPath && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// snapshotLocation 命令行参数优先，其次环境变量，最后配置文件
func snapshotLocation(flagValue, envValue, confValue string) string {
	for _, v := range []string{flagValue, envValue} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return confValue
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func render(ctx context.Context, cfg *config.Config, l *logrus.Logger) (*usecase.Page, error) {
	klog := logger.NewKratos(l)

	sc := &conf.Snapshot{
		Path:      cfg.Snapshot.Location,
		Qps:       cfg.Snapshot.QPS,
		Burst:     1,
		UserAgent: cfg.Snapshot.UserAgent,
	}
	dc := &conf.Dashboard{
		Strict:        cfg.Dashboard.Strict,
		TopN:          int32(cfg.Dashboard.TopN),
		Categories:    cfg.Dashboard.Categories,
		FallbackStyle: cfg.Dashboard.FallbackStyle,
		Palette:       cfg.Dashboard.Palette,
		Ranking:       &conf.Ranking{SortByScore: cfg.Dashboard.SortByScore},
	}

	var d *data.Data
	if isRemote(cfg.Snapshot.Location) {
		var cleanup func()
		var err error
		d, cleanup, err = data.NewData(sc, klog)
		if err != nil {
			return nil, err
		}
		defer cleanup()
	} else {
		d = data.NewDataWithSource(data.FileSource{})
	}

	r, err := data.NewSnapshotRepo(d, sc, klog)
	if err != nil {
		return nil, err
	}
	uc := usecase.NewDashboardUseCase(r, biz.NewNormalizer(dc, klog), biz.NewChartBuilder(dc, klog), dc, klog)

	if cfg.Snapshot.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Snapshot.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot timeout %q: %w", cfg.Snapshot.Timeout, err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return uc.Render(ctx)
}

// export 写出页面和图表图片，没有数据的图表删除旧文件
func export(pv view.PageView, dir string, l *logrus.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeFile(filepath.Join(dir, pageFile), func(w io.Writer) error {
		return view.WriteHTML(w, pv)
	}); err != nil {
		return err
	}

	for _, target := range []string{view.TargetRankingChart, view.TargetDistributionChart} {
		path := filepath.Join(dir, target+".png")
		spec := pv.Chart(target)
		if spec.IsEmpty() {
			_ = os.Remove(path)
			continue
		}
		err := writeFile(path, func(w io.Writer) error {
			return chartrender.Render(spec, chartrender.PNG, w)
		})
		if errors.Is(err, chartrender.ErrEmptyChart) {
			_ = os.Remove(path)
			continue
		}
		if err != nil {
			return err
		}
		l.WithField("file", path).Debug("chart written")
	}
	return nil
}

func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
