package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %s", cfg.Server.Addr())
	}
	if cfg.Cache.Backend != CacheFile || cfg.Cache.TTL != 4*time.Hour {
		t.Errorf("cache defaults = %+v", cfg.Cache)
	}
	if cfg.Source.Backend != SourceFile || cfg.Source.Dir != "./stats" {
		t.Errorf("source defaults = %+v", cfg.Source)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("request timeout = %v", cfg.Server.RequestTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statcard.yaml")
	data := `
server:
  port: 9090
  cors_origins: ["https://example.com"]
source:
  backend: mongo
  mongo_uri: mongodb://db:27017
cache:
  backend: redis
  ttl: 30m
  redis_addr: cache:6379
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 || len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://example.com" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Source.Backend != SourceMongo || cfg.Source.MongoURI != "mongodb://db:27017" {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.TTL != 30*time.Minute || cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.RedisPrefix != "statcard:" {
		t.Errorf("default not kept: %q", cfg.Cache.RedisPrefix)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statcard.toml")
	data := "[cache]\nbackend = \"none\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STATCARD_SERVER_PORT", "7070")
	t.Setenv("STATCARD_CACHE_BACKEND", "none")

	path := filepath.Join(t.TempDir(), "statcard.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("explicit missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "statcard.yaml")
	if err := os.WriteFile(path, []byte("cache:\n  backend: memcached\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "cache.backend") {
		t.Errorf("Load(bad backend) = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"source", func(c *Config) { c.Source.Backend = "s3" }, "source.backend"},
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"ttl", func(c *Config) { c.Cache.TTL = -time.Second }, "cache.ttl"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.want)
			}
		})
	}
}
