package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	AuthPort int    `yaml:"auth_port"`
	UserPort int    `yaml:"user_port"`
	PostPort int    `yaml:"post_port"`
	GinMode  string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
}

// Config is the immutable runtime configuration. It is constructed once in
// main and passed down; nothing reads it through package state.
type Config struct {
	AuthPort  string
	UserPort  string
	PostPort  string
	GinMode   string
	DSN       string
	JWTSecret string
	JWTIssuer string
	AccessTTL time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present and applies environment-variable
// overrides on top. All three services share one configuration so they agree
// on the token secret.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		configFile = &ConfigFile{}
	}

	cfg := &Config{
		AuthPort:  env("AUTH_PORT", portOrDefault(configFile.App.AuthPort, "8001")),
		UserPort:  env("USER_PORT", portOrDefault(configFile.App.UserPort, "8002")),
		PostPort:  env("POST_PORT", portOrDefault(configFile.App.PostPort, "8003")),
		GinMode:   env("GIN_MODE", configFile.App.GinMode),
		DSN:       env("DATABASE_DSN", configFile.Database.DSN),
		JWTSecret: env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer: env("JWT_ISSUER", configFile.JWT.Issuer),
	}

	ttl := env("JWT_ACCESS_TTL", configFile.JWT.AccessTTL)
	if ttl == "" {
		ttl = "1h"
	}
	cfg.AccessTTL, err = time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &config, nil
}

func portOrDefault(port int, def string) string {
	if port == 0 {
		return def
	}
	return fmt.Sprintf("%d", port)
}
