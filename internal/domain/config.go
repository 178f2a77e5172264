package domain

import (
	"fmt"
	"time"
)

// Store drivers.
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverNone     = "none"
)

// ThresholdOverall keys the overall score in MinThresholds.
const ThresholdOverall = "overall"

var (
	validStoreDrivers = []string{StoreDriverFile, StoreDriverPostgres, StoreDriverNone}
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogFormats   = []string{"text", "json"}
)

// Config holds settings loaded from .siteaudit.yaml.
type Config struct {
	Product       string         `yaml:"product"        json:"product"`
	Fetch         FetchConfig    `yaml:"fetch"          json:"fetch"`
	Server        ServerConfig   `yaml:"server"         json:"server"`
	Store         StoreConfig    `yaml:"store"          json:"store"`
	Log           LogConfig      `yaml:"log"            json:"log"`
	MinThresholds map[string]int `yaml:"min_thresholds" json:"min_thresholds,omitempty"`
}

type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout"        json:"timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
}

type ServerConfig struct {
	ListenAddr     string   `yaml:"listen_addr"     json:"listen_addr"`
	RateLimit      float64  `yaml:"rate_limit"      json:"rate_limit"`
	RateBurst      int      `yaml:"rate_burst"      json:"rate_burst"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins,omitempty"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers" json:"trust_proxy_headers"`
}

type StoreConfig struct {
	Driver      string `yaml:"driver"       json:"driver"`
	Path        string `yaml:"path"         json:"path,omitempty"`
	DatabaseURL string `yaml:"database_url" json:"-"`
}

type LogConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Product: "BIGWEB",
		Fetch: FetchConfig{
			Timeout:      15 * time.Second,
			MaxBodyBytes: 5 << 20,
		},
		Server: ServerConfig{
			ListenAddr:     ":8080",
			RateLimit:      1,
			RateBurst:      3,
			AllowedOrigins: []string{"*"},
		},
		Store: StoreConfig{
			Driver: StoreDriverFile,
			Path:   ".siteaudit/history/events.json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// UserAgent is the header value sent with every fetch.
func (c Config) UserAgent() string {
	return c.Product + "-Audit/1.0"
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Product == "" {
		return fmt.Errorf("product must not be empty")
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be > 0 (got %s)", c.Fetch.Timeout)
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetch.max_body_bytes must be > 0 (got %d)", c.Fetch.MaxBodyBytes)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %.2f)", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rate_burst must be > 0 when rate_limit is set (got %d)", c.Server.RateBurst)
	}

	if !contains(validStoreDrivers, c.Store.Driver) {
		return fmt.Errorf("unknown store.driver %q (valid: file, postgres, none)", c.Store.Driver)
	}
	if c.Store.Driver == StoreDriverFile && c.Store.Path == "" {
		return fmt.Errorf("store.path is required for the file driver")
	}
	if c.Store.Driver == StoreDriverPostgres && c.Store.DatabaseURL == "" {
		return fmt.Errorf("store.database_url (or DATABASE_URL) is required for the postgres driver")
	}

	if !contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log.level %q (valid: debug, info, warn, error)", c.Log.Level)
	}
	if !contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("unknown log.format %q (valid: text, json)", c.Log.Format)
	}

	for k, v := range c.MinThresholds {
		if k != ThresholdOverall && !IsValidDimension(k) {
			return fmt.Errorf("unknown key %q in min_thresholds", k)
		}
		if v < 0 || v > 100 {
			return fmt.Errorf("min_thresholds[%q] = %d (must be between 0 and 100)", k, v)
		}
	}

	return nil
}

// ThresholdFailures lists every configured minimum the report falls below.
func (c Config) ThresholdFailures(r AuditReport) []string {
	var failures []string
	if min, ok := c.MinThresholds[ThresholdOverall]; ok && r.OverallScore < min {
		failures = append(failures, fmt.Sprintf("overall score %d is below minimum %d", r.OverallScore, min))
	}
	for _, d := range Dimensions {
		min, ok := c.MinThresholds[string(d)]
		if !ok {
			continue
		}
		if got := r.ScoreFor(d).Score; got < min {
			failures = append(failures, fmt.Sprintf("%s score %d is below minimum %d", d, got, min))
		}
	}
	return failures
}

func IsValidDimension(name string) bool {
	for _, d := range Dimensions {
		if string(d) == name {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
