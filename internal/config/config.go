package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all engine configuration, loaded from environment variables
// with defaults suitable for local development.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Scan      ScanConfig
	Storage   StorageConfig
	Workspace WorkspaceConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// BackendConfig holds remote collaborator addresses.
type BackendConfig struct {
	SessionAddr      string `envconfig:"SESSION_BACKEND_ADDR" default:"http://localhost:7070"`
	IntegrationsAddr string `envconfig:"INTEGRATIONS_ADDR" default:"http://localhost:7071"`
	Enabled          bool   `envconfig:"SESSION_BACKEND_ENABLED" default:"true"`
}

// ScanConfig controls the periodic port scanner.
type ScanConfig struct {
	Host     string        `envconfig:"SCAN_HOST" default:"127.0.0.1"`
	Ports    []int         `envconfig:"SCAN_PORTS" default:"3001,4200,5173,5432,8080,8888,9000"`
	Timeout  time.Duration `envconfig:"SCAN_TIMEOUT" default:"250ms"`
	Schedule string        `envconfig:"SCAN_SCHEDULE" default:"@every 5s"`
	Enabled  bool          `envconfig:"SCAN_ENABLED" default:"true"`
}

// StorageConfig locates the durable snapshot document.
type StorageConfig struct {
	Path string `envconfig:"STORAGE_PATH" default:"/tmp/local-ide/state.json"`
}

// WorkspaceConfig tunes engine behavior.
type WorkspaceConfig struct {
	HomePort         int           `envconfig:"HOME_PORT" default:"3000"`
	MessageTail      int           `envconfig:"MESSAGE_TAIL" default:"50"`
	QueryTail        int           `envconfig:"QUERY_TAIL" default:"25"`
	AutosaveInterval time.Duration `envconfig:"AUTOSAVE_INTERVAL" default:"30s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds per-IP rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000", Host: "0.0.0.0"},
		Backend: BackendConfig{
			SessionAddr:      "http://localhost:7070",
			IntegrationsAddr: "http://localhost:7071",
			Enabled:          true,
		},
		Scan: ScanConfig{
			Host:     "127.0.0.1",
			Ports:    []int{3001, 4200, 5173, 5432, 8080, 8888, 9000},
			Timeout:  250 * time.Millisecond,
			Schedule: "@every 5s",
			Enabled:  true,
		},
		Storage: StorageConfig{Path: "/tmp/local-ide/state.json"},
		Workspace: WorkspaceConfig{
			HomePort:         3000,
			MessageTail:      50,
			QueryTail:        25,
			AutosaveInterval: 30 * time.Second,
		},
		Logging:   LogConfig{Level: "info"},
		RateLimit: RateLimitConfig{RequestsPerSecond: 100, Burst: 200, Enabled: true},
	}
}
