package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr            string        `mapstructure:"addr"`
	DBPath          string        `mapstructure:"db_path"`
	TemplatePath    string        `mapstructure:"template_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadConfig reads the service configuration file. TemplatePath may stay
// empty, in which case the baked-in default template layout is used.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("addr", "127.0.0.1:8080")
	v.SetDefault("db_path", "delivery-logger.db")
	v.SetDefault("shutdown_timeout", "10s")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
