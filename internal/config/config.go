// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BackendConfig struct {
	BaseURL string        `yaml:"base_url"` // e.g. http://localhost:8000/api/v1
	Timeout time.Duration `yaml:"timeout"`
}

type SessionConfig struct {
	Path string        `yaml:"path"` // persisted token file
	TTL  time.Duration `yaml:"ttl"`  // fixed token lifetime on login
}

type StorageConfig struct {
	WeightDB string `yaml:"weight_db"` // local sqlite journal
}

type OpsConfig struct {
	Addr string `yaml:"addr"` // /health + /metrics listener
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Session SessionConfig `yaml:"session"`
	Storage StorageConfig `yaml:"storage"`
	Ops     OpsConfig     `yaml:"ops"`
	Log     LogConfig     `yaml:"log"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// defaults
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = "http://localhost:8000/api/v1"
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = 15 * time.Second
	}
	if cfg.Session.Path == "" {
		cfg.Session.Path = "session.json"
	}
	cfg.Session.TTL = normalizeTTL(cfg.Session.TTL)
	if cfg.Storage.WeightDB == "" {
		cfg.Storage.WeightDB = "healthai.db"
	}
	if cfg.Ops.Addr == "" {
		cfg.Ops.Addr = "127.0.0.1:9180"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	// Minimal validation
	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("backend.base_url must be an absolute URL")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func normalizeTTL(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Hour
	}
	return d
}
