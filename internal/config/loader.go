package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 是环境变量前缀，例如 ADMINBOARD_LISTING_PAGE_SIZE。
const EnvPrefix = "ADMINBOARD"

// Load reads configuration from defaults, an optional YAML file and
// ADMINBOARD_* environment variables, in increasing priority. An empty path
// searches the working directory and /etc/adminboard/.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Default settings
	setDefaults(v)

	// Config file settings
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/adminboard/")
	}

	// Environment variable settings
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// 未找到配置文件时仅使用默认值与环境变量
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the listing and UI layers cannot work with.
func (c *Config) Validate() error {
	if c.Listing.PageSize <= 0 {
		return fmt.Errorf("config: listing.page_size must be positive, got %d", c.Listing.PageSize)
	}
	if c.Listing.LoadLatency < 0 {
		return fmt.Errorf("config: listing.load_latency must not be negative")
	}
	// load_latency 允许为 0（关闭模拟延迟），其余时长与数量必须为正
	if c.Listing.DebounceDelay <= 0 {
		return fmt.Errorf("config: listing.debounce_delay must be positive, got %s", c.Listing.DebounceDelay)
	}
	if c.Dataset.Users <= 0 || c.Dataset.Billings <= 0 {
		return fmt.Errorf("config: dataset.users and dataset.billings must be positive, got %d and %d", c.Dataset.Users, c.Dataset.Billings)
	}
	if c.Dataset.History <= 0 {
		return fmt.Errorf("config: dataset.history must be positive, got %s", c.Dataset.History)
	}
	if c.UI.ModalCleanupDelay <= 0 {
		return fmt.Errorf("config: ui.modal_cleanup_delay must be positive, got %s", c.UI.ModalCleanupDelay)
	}
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("config: ui.theme must be auto, dark or light, got %q", c.UI.Theme)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.add_source", false)
	v.SetDefault("log.file", "adminboard.log")

	v.SetDefault("listing.page_size", 25)
	v.SetDefault("listing.load_latency", "300ms")
	v.SetDefault("listing.debounce_delay", "300ms")

	v.SetDefault("dataset.users", 1000)
	v.SetDefault("dataset.billings", 200)
	v.SetDefault("dataset.seed", 0)
	v.SetDefault("dataset.history", "4320h")

	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.modal_cleanup_delay", "300ms")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", "127.0.0.1:9464")
	v.SetDefault("metrics.namespace", "adminboard")
	v.SetDefault("metrics.subsystem", "listing")
	v.SetDefault("metrics.buckets", []float64{.05, .1, .25, .5, 1, 2.5})
}
