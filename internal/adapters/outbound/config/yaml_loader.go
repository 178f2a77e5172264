package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/siteaudit/internal/domain"
)

// FileName is the config file looked up in a directory.
const FileName = ".siteaudit.yaml"

// Environment variables that override file values.
const (
	EnvProduct     = "SITEAUDIT_PRODUCT"
	EnvListenAddr  = "SITEAUDIT_LISTEN_ADDR"
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "LOG_LEVEL"
)

// YAMLLoader implements domain.ConfigLoader by reading .siteaudit.yaml.
type YAMLLoader struct {
	getenv func(string) string
}

// New creates a YAMLLoader that reads overrides from the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *YAMLLoader { return &YAMLLoader{getenv: getenv} }

// Load reads the config at path. A directory is searched for .siteaudit.yaml
// and yields DefaultConfig when it has none; an explicit file must exist.
// File values are laid over the defaults, then environment overrides apply.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	file, optional, err := resolve(path)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(file), err)
		}
	case errors.Is(err, os.ErrNotExist) && optional:
	default:
		return domain.Config{}, fmt.Errorf("reading config: %w", err)
	}

	l.applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(file), err)
	}
	return cfg, nil
}

func (l *YAMLLoader) applyEnv(cfg *domain.Config) {
	if v := l.getenv(EnvProduct); v != "" {
		cfg.Product = v
	}
	if v := l.getenv(EnvListenAddr); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := l.getenv(EnvDatabaseURL); v != "" {
		cfg.Store.DatabaseURL = v
	}
	if v := l.getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

// resolve maps path to the config file to read and reports whether that
// file may be absent.
func resolve(path string) (string, bool, error) {
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config %s does not exist", path)
		}
		return "", false, fmt.Errorf("reading config: %w", err)
	}
	if info.IsDir() {
		return filepath.Join(path, FileName), true, nil
	}
	return path, false, nil
}
