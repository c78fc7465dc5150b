package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// GenerationConfig bounds the random markup applied when deriving
// alternative budgets. Percentages are inclusive; the draw range for a
// request is [MinMarkupPercent, max(request range, MinMarkupPercent)].
type GenerationConfig struct {
	MinMarkupPercent     float64 `mapstructure:"minMarkupPercent"`
	DefaultMarkupPercent float64 `mapstructure:"defaultMarkupPercent"`
	MaxMarkupPercent     float64 `mapstructure:"maxMarkupPercent"`
}

func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MinMarkupPercent:     1,
		DefaultMarkupPercent: 20,
		MaxMarkupPercent:     100,
	}
}

// GenerationConfigHolder exposes the current generation config and hot
// reloads it when the backing file changes.
type GenerationConfigHolder struct {
	current atomic.Value // holds GenerationConfig
}

func NewGenerationConfigHolder() (*GenerationConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("generation")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/orcaflow")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ORCAFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultGenerationConfig()
		v.SetDefault("generation.minMarkupPercent", defaults.MinMarkupPercent)
		v.SetDefault("generation.defaultMarkupPercent", defaults.DefaultMarkupPercent)
		v.SetDefault("generation.maxMarkupPercent", defaults.MaxMarkupPercent)
	}

	var cfg GenerationConfig
	if err := v.UnmarshalKey("generation", &cfg); err != nil {
		return nil, err
	}
	if err := validateGenerationConfig(cfg); err != nil {
		return nil, err
	}

	holder := &GenerationConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated GenerationConfig
		if err := v.UnmarshalKey("generation", &updated); err != nil {
			log.Printf("[generation-config] reload failed: %v", err)
			return
		}
		if err := validateGenerationConfig(updated); err != nil {
			log.Printf("[generation-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[generation-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// StaticGenerationConfigHolder wraps a fixed config with no file watch.
func StaticGenerationConfigHolder(cfg GenerationConfig) *GenerationConfigHolder {
	holder := &GenerationConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *GenerationConfigHolder) Get() GenerationConfig {
	return h.current.Load().(GenerationConfig)
}

func validateGenerationConfig(cfg GenerationConfig) error {
	if cfg.MinMarkupPercent < 1 {
		return errors.New("generation.minMarkupPercent must be at least 1")
	}
	if cfg.DefaultMarkupPercent < cfg.MinMarkupPercent {
		return errors.New("generation.defaultMarkupPercent cannot be below the minimum")
	}
	if cfg.MaxMarkupPercent < cfg.DefaultMarkupPercent {
		return errors.New("generation.maxMarkupPercent cannot be below the default")
	}
	return nil
}
