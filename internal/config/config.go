// Package config loads mathpath configuration from an optional YAML file,
// a .env file and MATHPATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/oracle"
	"github.com/abhisek/mathpath/internal/session"
)

// EnvPrefix prefixes every environment override, e.g. MATHPATH_SERVER_ADDR.
const EnvPrefix = "MATHPATH"

// Config is the complete application configuration.
type Config struct {
	Server ServerConfig  `mapstructure:"server"`
	Log    LogConfig     `mapstructure:"log"`
	DB     DBConfig      `mapstructure:"db"`
	Engine EngineConfig  `mapstructure:"engine"`
	Events EventsConfig  `mapstructure:"events"`
	Oracle oracle.Config `mapstructure:"oracle"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

type DBConfig struct {
	// Path to the SQLite file. Empty means the default data location.
	Path string `mapstructure:"path"`
}

// EngineConfig tunes the progression engine.
type EngineConfig struct {
	Lookback        int           `mapstructure:"lookback"`
	TipCooldown     time.Duration `mapstructure:"tip_cooldown"`
	SessionDuration time.Duration `mapstructure:"session_duration"`
	ExerciseCount   int           `mapstructure:"exercise_count"`
	PlanTimeout     time.Duration `mapstructure:"plan_timeout"`
}

type EventsConfig struct {
	// AMQPURL enables RabbitMQ publishing when set.
	AMQPURL  string `mapstructure:"amqp_url"`
	Exchange string `mapstructure:"exchange"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("db.path", "")

	v.SetDefault("engine.lookback", attempt.DefaultLookback)
	v.SetDefault("engine.tip_cooldown", session.DefaultTipCooldown.String())
	v.SetDefault("engine.session_duration", session.DefaultSessionDuration.String())
	v.SetDefault("engine.exercise_count", session.DefaultExerciseCount)
	v.SetDefault("engine.plan_timeout", session.DefaultPlanTimeout.String())

	v.SetDefault("events.amqp_url", "")
	v.SetDefault("events.exchange", "mathpath.events")

	oc := oracle.DefaultConfig()
	v.SetDefault("oracle.provider", "")
	v.SetDefault("oracle.timeout", oc.Timeout.String())
	for name, pc := range map[string]oracle.ProviderConfig{
		"anthropic":  oc.Anthropic,
		"openai":     oc.OpenAI,
		"gemini":     oc.Gemini,
		"openrouter": oc.OpenRouter,
	} {
		v.SetDefault("oracle."+name+".api_key", "")
		v.SetDefault("oracle."+name+".model", pc.Model)
		v.SetDefault("oracle."+name+".base_url", pc.BaseURL)
	}
	v.SetDefault("oracle.retry.max_attempts", oc.Retry.MaxAttempts)
	v.SetDefault("oracle.retry.initial_wait", oc.Retry.InitialWait.String())
	v.SetDefault("oracle.retry.max_wait", oc.Retry.MaxWait.String())
	v.SetDefault("oracle.retry.multiplier", oc.Retry.Multiplier)
	v.SetDefault("oracle.breaker.failures", oc.Breaker.Failures)
	v.SetDefault("oracle.breaker.cooldown", oc.Breaker.Cooldown.String())
}

// Load reads configuration. path names an explicit config file; when empty
// config.yaml is looked up in the working directory and in
// $XDG_CONFIG_HOME/mathpath. A missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "mathpath"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Oracle.Provider == "" {
		if found, ok := oracle.Discover(cfg.Oracle); ok {
			cfg.Oracle = found
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. The oracle section is validated only when
// a provider is selected; without one the service runs on stored content.
func (c *Config) Validate() error {
	if c.Engine.Lookback <= 0 {
		return fmt.Errorf("engine.lookback must be positive, got %d", c.Engine.Lookback)
	}
	if c.Engine.TipCooldown < 0 {
		return fmt.Errorf("engine.tip_cooldown must not be negative")
	}
	if c.Engine.ExerciseCount <= 0 {
		return fmt.Errorf("engine.exercise_count must be positive, got %d", c.Engine.ExerciseCount)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Oracle.Provider != "" {
		if err := c.Oracle.Validate(); err != nil {
			return fmt.Errorf("oracle: %w", err)
		}
	}
	return nil
}

// OracleEnabled reports whether a content oracle is configured.
func (c *Config) OracleEnabled() bool {
	return c.Oracle.Provider != ""
}

// NewLogger builds the application logger.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}
