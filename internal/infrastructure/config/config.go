package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"assistant-client/internal/domain/model"
	"github.com/spf13/viper"
)

const EnvPrefix = "ASSISTANT"

type ServerConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Path string `mapstructure:"path"`
}

type MockConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ErrorToken string `mapstructure:"error_token"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type GatewayConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

type Config struct {
	Server     ServerConfig           `mapstructure:"server"`
	Cache      CacheConfig            `mapstructure:"cache"`
	Mock       MockConfig             `mapstructure:"mock"`
	Log        LogConfig              `mapstructure:"log"`
	Gateway    GatewayConfig          `mapstructure:"gateway"`
	Translator model.TranslatorConfig `mapstructure:"translator"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "https://api.ks-cube.tk/")
	v.SetDefault("server.timeout", 15*time.Second)
	v.SetDefault("cache.path", "assistant.db")
	v.SetDefault("mock.enabled", false)
	v.SetDefault("mock.error_token", "Error")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("gateway.listen_addr", ":8080")
}

// Load reads the YAML file at path (optional, may be empty) and applies
// ASSISTANT_* environment overrides, e.g. ASSISTANT_SERVER_URL.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return errors.New("server.url is required")
	}
	if c.Server.Timeout <= 0 {
		return errors.New("server.timeout must be positive")
	}
	if c.Cache.Path == "" {
		return errors.New("cache.path is required")
	}
	return nil
}
