package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	APIRoot        string
	AuthToken      string
	LoginEmail     string
	LoginPassword  string
	RequestTimeout time.Duration
	ReportDir      string
}

const defaultAPIRoot = "http://localhost:8080"

// fileConfig is the optional TOML config file shape. Environment variables
// override anything set here.
type fileConfig struct {
	APIRoot       string `toml:"api_root"`
	AuthToken     string `toml:"auth_token"`
	LoginEmail    string `toml:"login_email"`
	LoginPassword string `toml:"login_password"`
	Timeout       string `toml:"timeout"`
	ReportDir     string `toml:"report_dir"`
}

// Load builds the configuration from defaults, then the config file named by
// PORTAL_CONFIG (when present), then environment variables.
func Load() Config {
	cfg := Config{
		APIRoot:        defaultAPIRoot,
		RequestTimeout: 30 * time.Second,
		ReportDir:      "storage/reports",
	}

	if path := os.Getenv("PORTAL_CONFIG"); path != "" {
		if fc, err := loadFile(path); err == nil {
			applyFile(&cfg, fc)
		}
	}

	cfg.APIRoot = getEnv("PORTAL_API_ROOT", cfg.APIRoot)
	cfg.AuthToken = getEnv("PORTAL_AUTH_TOKEN", cfg.AuthToken)
	cfg.LoginEmail = getEnv("PORTAL_LOGIN_EMAIL", cfg.LoginEmail)
	cfg.LoginPassword = getEnv("PORTAL_LOGIN_PASSWORD", cfg.LoginPassword)
	cfg.RequestTimeout = getEnvDuration("PORTAL_TIMEOUT", cfg.RequestTimeout)
	cfg.ReportDir = getEnv("PORTAL_REPORT_DIR", cfg.ReportDir)
	return cfg
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, err
		}
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.APIRoot != "" {
		cfg.APIRoot = fc.APIRoot
	}
	if fc.AuthToken != "" {
		cfg.AuthToken = fc.AuthToken
	}
	if fc.LoginEmail != "" {
		cfg.LoginEmail = fc.LoginEmail
	}
	if fc.LoginPassword != "" {
		cfg.LoginPassword = fc.LoginPassword
	}
	if fc.Timeout != "" {
		if parsed, err := time.ParseDuration(fc.Timeout); err == nil {
			cfg.RequestTimeout = parsed
		}
	}
	if fc.ReportDir != "" {
		cfg.ReportDir = fc.ReportDir
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	root := strings.TrimSpace(c.APIRoot)
	if root == "" {
		return fmt.Errorf("API root is required")
	}
	u, err := url.Parse(root)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API root %q is not a valid URL", c.APIRoot)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}
