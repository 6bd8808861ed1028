// Package config loads runtime settings from defaults, an optional
// config.yaml, an optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	EventWorkers    int           `mapstructure:"event_workers"`
	EventQueue      int           `mapstructure:"event_queue"`
	EnforceCapacity bool          `mapstructure:"enforce_capacity"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Redis           RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// Load reads configuration. Environment variables use the upper-cased key
// with dots replaced by underscores, e.g. REDIS_ADDR.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(viper.New(), ".", "./configs")
}

func load(v *viper.Viper, paths ...string) (Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("event_workers", 4)
	v.SetDefault("event_queue", 256)
	v.SetDefault("enforce_capacity", false)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	// Registered so AutomaticEnv picks the nested keys up during Unmarshal.
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "activities.events")
}

func (c Config) validate() error {
	if c.HTTPAddr == "" {
		return errors.New("http_addr is required")
	}
	if c.EventWorkers < 1 {
		return fmt.Errorf("event_workers must be positive, got %d", c.EventWorkers)
	}
	if c.EventQueue < 0 {
		return fmt.Errorf("event_queue must not be negative, got %d", c.EventQueue)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.Redis.Enabled() && c.Redis.Channel == "" {
		return errors.New("redis.channel is required when redis.addr is set")
	}
	return nil
}
