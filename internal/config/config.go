package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Feed     FeedConfig     `yaml:"feed"`
}

type AppConfig struct {
	Env  string `yaml:"env"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	URI  string `yaml:"uri"`
	Name string `yaml:"name"`
}

type AuthConfig struct {
	Secret     string        `yaml:"secret"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
}

type FeedConfig struct {
	PageSize int `yaml:"page_size"`
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  "development",
			Host: "127.0.0.1",
			Port: 8080,
		},
		Database: DatabaseConfig{
			URI:  "mongodb://127.0.0.1:27017",
			Name: "microblog",
		},
		Auth: AuthConfig{
			Secret:     "change-me-in-production",
			TokenTTL:   time.Hour,
			BcryptCost: 12,
		},
		Feed: FeedConfig{
			PageSize: 4,
		},
	}

	// Load from YAML if exists
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.App.Env = env
	}
	if host := os.Getenv("APP_HOST"); host != "" {
		cfg.App.Host = host
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.App.Port = p
		}
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if name := os.Getenv("MONGO_DB"); name != "" {
		cfg.Database.Name = name
	}
	if secret := os.Getenv("APP_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.Auth.TokenTTL = d
		}
	}
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		if v, err := strconv.Atoi(cost); err == nil {
			cfg.Auth.BcryptCost = v
		}
	}
	if size := os.Getenv("PAGE_SIZE"); size != "" {
		if v, err := strconv.Atoi(size); err == nil {
			cfg.Feed.PageSize = v
		}
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
