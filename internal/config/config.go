// Package config loads the simulator configuration from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CHAOS_ENGINE_SEED
const EnvPrefix = "CHAOS"

// Config is the root configuration
type Config struct {
	Logging    LoggingConfig                 `mapstructure:"logging"`
	Engine     EngineConfig                  `mapstructure:"engine"`
	Journal    JournalConfig                 `mapstructure:"journal"`
	Simulation SimulationConfig              `mapstructure:"simulation"`
	Catalogs   map[string]map[string]float64 `mapstructure:"catalogs"`
}

// LoggingConfig selects the log level and encoder
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig tunes the host loop and the modifier tables
type EngineConfig struct {
	TickRateHz       int      `mapstructure:"tick_rate_hz"`
	Seed             uint64   `mapstructure:"seed"`
	InboxSize        int      `mapstructure:"inbox_size"`
	DisabledCatalogs []string `mapstructure:"disabled_catalogs"`
}

// JournalConfig controls outcome recording
type JournalConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Capacity int    `mapstructure:"capacity"`
	Dir      string `mapstructure:"dir"`
	Stream   bool   `mapstructure:"stream"`
}

// SimulationConfig drives the synthetic event feed
type SimulationConfig struct {
	EventsPerSecond int           `mapstructure:"events_per_second"`
	Duration        time.Duration `mapstructure:"duration"`
	Worlds          []string      `mapstructure:"worlds"`
	Players         int           `mapstructure:"players"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("engine.tick_rate_hz", 20)
	v.SetDefault("engine.seed", 0)
	v.SetDefault("engine.inbox_size", 256)
	v.SetDefault("engine.disabled_catalogs", []string{})

	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.capacity", 1024)
	v.SetDefault("journal.dir", "data/journal")
	v.SetDefault("journal.stream", false)

	v.SetDefault("simulation.events_per_second", 50)
	v.SetDefault("simulation.duration", "30s")
	v.SetDefault("simulation.worlds", []string{"world"})
	v.SetDefault("simulation.players", 2)
}

// Load reads path, applies CHAOS_ environment overrides and validates the
// result. A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that the engine cannot recover from
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Engine.TickRateHz <= 0 || c.Engine.TickRateHz > 1000 {
		return fmt.Errorf("engine.tick_rate_hz must be in 1..1000, got %d", c.Engine.TickRateHz)
	}
	if c.Engine.InboxSize <= 0 {
		return fmt.Errorf("engine.inbox_size must be positive, got %d", c.Engine.InboxSize)
	}
	if c.Journal.Enabled && c.Journal.Capacity <= 0 {
		return fmt.Errorf("journal.capacity must be positive, got %d", c.Journal.Capacity)
	}
	if c.Simulation.EventsPerSecond < 0 || c.Simulation.EventsPerSecond > 10000 {
		return fmt.Errorf("simulation.events_per_second must be in 0..10000, got %d", c.Simulation.EventsPerSecond)
	}
	if c.Simulation.Duration < 0 {
		return fmt.Errorf("simulation.duration must not be negative, got %s", c.Simulation.Duration)
	}
	if len(c.Simulation.Worlds) == 0 {
		return fmt.Errorf("simulation.worlds must name at least one world")
	}
	return nil
}
