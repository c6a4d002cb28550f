package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/creamcroissant/adminboard/internal/config"
	"github.com/creamcroissant/adminboard/internal/listing"
	"github.com/creamcroissant/adminboard/internal/metrics"
	"github.com/creamcroissant/adminboard/internal/repository"
	"github.com/creamcroissant/adminboard/internal/seed"
	"github.com/creamcroissant/adminboard/internal/support/logging"
)

// app 汇总各子命令共享的配置与日志
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	sessionID string
	observer  listing.Observer
}

func newApp(logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, sessionID := logging.WithSession(logging.New(logging.Options{
		Level:     cfg.Log.SlogLevel(),
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
		Output:    logOutput,
	}))
	return &app{cfg: cfg, logger: logger, sessionID: sessionID}, nil
}

func (a *app) listingOptions(name string) listing.Options {
	latency := a.cfg.Listing.LoadLatency
	if latency == 0 {
		// 配置为 0 表示不模拟加载延迟
		latency = -1
	}
	return listing.Options{
		Name:     name,
		PageSize: a.cfg.Listing.PageSize,
		Latency:  latency,
		Logger:   a.logger,
		Observer: a.observer,
	}
}

func (a *app) seedOptions() seed.Options {
	return seed.Options{
		Users:    a.cfg.Dataset.Users,
		Billings: a.cfg.Dataset.Billings,
		Seed:     a.cfg.Dataset.Seed,
		History:  a.cfg.Dataset.History,
	}
}

// 每个数据集使用独立的生成器，保证固定种子下结果与访问顺序无关
func (a *app) users() []repository.User {
	return seed.New(a.seedOptions()).Users()
}

func (a *app) billings() []repository.Billing {
	return seed.New(a.seedOptions()).Billings()
}

func (a *app) metricsConfig() metrics.Config {
	mc := metrics.DefaultConfig()
	if a.cfg.Metrics.Namespace != "" {
		mc.Namespace = a.cfg.Metrics.Namespace
	}
	mc.Subsystem = a.cfg.Metrics.Subsystem
	if len(a.cfg.Metrics.Buckets) > 0 {
		mc.Buckets = a.cfg.Metrics.Buckets
	}
	return mc
}

func since(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
