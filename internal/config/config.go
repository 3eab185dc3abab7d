package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "evcharge/libs/config"
)

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"EVCHARGE_HTTP_PORT"`
	} `yaml:"http"`
	Mongo struct {
		URI      string `yaml:"uri" env:"EVCHARGE_MONGO_URI"`
		Database string `yaml:"database" env:"EVCHARGE_MONGO_DATABASE"`
	} `yaml:"mongo"`
	Redis struct {
		Addr     string `yaml:"addr" env:"EVCHARGE_REDIS_ADDR"`
		Password string `yaml:"password" env:"EVCHARGE_REDIS_PASSWORD"`
	} `yaml:"redis"`
	JWT struct {
		Secret           string `yaml:"secret" env:"EVCHARGE_JWT_SECRET"`
		ExpiresInMinutes int    `yaml:"expiresInMinutes" env:"EVCHARGE_JWT_EXPIRES_MINUTES"`
	} `yaml:"jwt"`
	Seed struct {
		AdminEmail    string `yaml:"adminEmail" env:"EVCHARGE_SEED_ADMIN_EMAIL"`
		AdminPassword string `yaml:"adminPassword" env:"EVCHARGE_SEED_ADMIN_PASSWORD"`
		AdminName     string `yaml:"adminName" env:"EVCHARGE_SEED_ADMIN_NAME"`
	} `yaml:"seed"`
}

// Load reads configuration using the shared config loader.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Mongo.Database = "evcharge"
	cfg.JWT.ExpiresInMinutes = 60
	cfg.Seed.AdminName = "Administrator"

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("config: mongo URI is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("config: jwt secret is required")
	}
	if cfg.JWT.ExpiresInMinutes <= 0 {
		cfg.JWT.ExpiresInMinutes = 60
	}

	return cfg, nil
}

// HTTPAddress ensures we always return host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// JWTExpiration converts configured expiry to duration.
func (c *Config) JWTExpiration() time.Duration {
	if c.JWT.ExpiresInMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.JWT.ExpiresInMinutes) * time.Minute
}
