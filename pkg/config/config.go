// Package config loads the server configuration.
//
// Values come from, in increasing precedence: built-in defaults, a
// statcard.yaml or statcard.toml file, and STATCARD_* environment
// variables (nested keys joined with underscores, e.g.
// STATCARD_CACHE_BACKEND).
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "STATCARD"

// Source backends.
const (
	SourceFile  = "file"
	SourceMongo = "mongo"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Source  SourceConfig  `mapstructure:"source"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	CORSOrigins    []string      `mapstructure:"cors_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// SourceConfig selects where stats records come from.
type SourceConfig struct {
	Backend         string `mapstructure:"backend"` // "file" or "mongo"
	Dir             string `mapstructure:"dir"`
	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection"`
}

// CacheConfig selects where rendered cards are cached.
type CacheConfig struct {
	Backend       string        `mapstructure:"backend"` // "none", "file" or "redis"
	Dir           string        `mapstructure:"dir"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	RedisPrefix   string        `mapstructure:"redis_prefix"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the configuration. When path is empty, statcard.{yaml,toml} is
// searched in the working directory, ~/.config/statcard and /etc/statcard;
// a missing file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("statcard")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "statcard"))
		v.AddConfigPath("/etc/statcard")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
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

// Default returns the configuration with only defaults applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.request_timeout", "10s")

	v.SetDefault("source.backend", SourceFile)
	v.SetDefault("source.dir", "./stats")
	v.SetDefault("source.mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("source.mongo_database", "statcard")
	v.SetDefault("source.mongo_collection", "stats")

	v.SetDefault("cache.backend", CacheFile)
	v.SetDefault("cache.dir", DefaultCacheDir())
	v.SetDefault("cache.ttl", "4h")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.redis_prefix", "statcard:")

	v.SetDefault("logging.level", "info")
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	switch c.Source.Backend {
	case SourceFile, SourceMongo:
	default:
		return fmt.Errorf("source.backend must be %q or %q, got %q", SourceFile, SourceMongo, c.Source.Backend)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return fmt.Errorf("cache.backend must be one of none, file, redis; got %q", c.Cache.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

// DefaultCacheDir returns the user cache directory for rendered cards.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "statcard")
	}
	return filepath.Join(homeDir(), ".cache", "statcard")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
