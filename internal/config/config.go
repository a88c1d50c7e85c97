package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envPrefix 环境变量前缀，例如 BODYMAP_SERVER_PORT
const envPrefix = "BODYMAP"

// PlaceholderJWTSecret is the shipped default secret; it must be replaced
// before auth.required is turned on
const PlaceholderJWTSecret = "your-secret-key-change-in-production"

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Heatmap   HeatmapConfig   `mapstructure:"heatmap"`
	Symptoms  SymptomsConfig  `mapstructure:"symptoms"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig SQLite 配置
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Migrate bool   `mapstructure:"migrate"` // Apply embedded migrations on start
}

// AuthConfig JWT 配置
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Required  bool   `mapstructure:"required"` // Reject requests without a bearer token
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"` // Maximum requests per window per client
	Window   time.Duration `mapstructure:"window"`
}

// HeatmapConfig 热力图缓存配置
type HeatmapConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

// SymptomsConfig 症状查询配置
type SymptomsConfig struct {
	FetchLimit int `mapstructure:"fetch_limit"` // Max symptoms loaded for one body map
}

var defaults = map[string]interface{}{
	"server.port":             ":8080",
	"server.shutdown_timeout": 10 * time.Second,
	"database.path":           "./data/bodymap.db",
	"database.migrate":        true,
	"auth.jwt_secret":         PlaceholderJWTSecret,
	"auth.required":           false,
	"log.level":               "info",
	"log.format":              "json",
	"ratelimit.requests":      120,
	"ratelimit.window":        time.Minute,
	"heatmap.cache_size":      64,
	"symptoms.fetch_limit":    500,
}

// newViper 创建带默认值和环境变量绑定的 viper 实例
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Defaults also register every key so AutomaticEnv applies on Unmarshal.
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	return v
}

// Load 加载配置: path 为空时只读取环境变量
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port must not be empty"))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path must not be empty"))
	}
	if c.Auth.Required {
		switch c.Auth.JWTSecret {
		case "":
			errs = append(errs, errors.New("auth.jwt_secret is required when auth.required is set"))
		case PlaceholderJWTSecret:
			errs = append(errs, errors.New("auth.jwt_secret must be changed from the default when auth.required is set"))
		}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	if c.RateLimit.Requests < 0 {
		errs = append(errs, errors.New("ratelimit.requests must not be negative"))
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("ratelimit.window must be positive"))
	}
	if c.Symptoms.FetchLimit <= 0 {
		errs = append(errs, errors.New("symptoms.fetch_limit must be positive"))
	}
	return errors.Join(errs...)
}

// Warnings 返回不阻止启动但应记录的配置问题
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.Auth.Required {
		warnings = append(warnings, "auth.required is false: requests without a token share the anonymous owner")
	}
	if c.Auth.JWTSecret == PlaceholderJWTSecret {
		warnings = append(warnings, "auth.jwt_secret is the default placeholder")
	}
	return warnings
}
