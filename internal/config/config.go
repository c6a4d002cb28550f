package config

import (
	"log/slog"
	"time"
)

// Config 汇总应用的全部配置。
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Listing ListingConfig `mapstructure:"listing"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	UI      UIConfig      `mapstructure:"ui"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig 定义日志配置。
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
	// File 为终端界面模式下的日志文件；命令行模式输出到 stderr。
	File string `mapstructure:"file"`
}

// ListingConfig 定义列表分页与搜索防抖参数。
type ListingConfig struct {
	PageSize      int           `mapstructure:"page_size"`
	LoadLatency   time.Duration `mapstructure:"load_latency"`
	DebounceDelay time.Duration `mapstructure:"debounce_delay"`
}

// DatasetConfig 定义模拟数据的生成参数。
type DatasetConfig struct {
	Users    int           `mapstructure:"users"`
	Billings int           `mapstructure:"billings"`
	Seed     uint64        `mapstructure:"seed"`
	History  time.Duration `mapstructure:"history"`
}

// UIConfig 定义终端界面配置。
type UIConfig struct {
	Theme             string        `mapstructure:"theme"`
	ModalCleanupDelay time.Duration `mapstructure:"modal_cleanup_delay"`
}

// MetricsConfig 定义 Prometheus 指标配置。
type MetricsConfig struct {
	Enabled   bool      `mapstructure:"enabled"`
	Addr      string    `mapstructure:"addr"`
	Namespace string    `mapstructure:"namespace"`
	Subsystem string    `mapstructure:"subsystem"`
	Buckets   []float64 `mapstructure:"buckets"`
}

func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
