// config - источник загрузки конфигурации компаньон-сервиса Sort a Short.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
//
// Перед чтением подхватывается ./.env (godotenv); уже заданные переменные окружения
// им не перезаписываются.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"
)

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	API        APIConfig        `yaml:"api"`
	Session    SessionConfig    `yaml:"session"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Reconciler ReconcilerConfig `yaml:"reconciler"`
	Social     SocialConfig     `yaml:"social"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// HTTPConfig - локальный view API для фронтенда.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"127.0.0.1"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50100"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig - отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"127.0.0.1"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"50105"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// APIConfig - внешний REST API Sort a Short.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"API_BASE_URL"   env-default:"http://localhost:8080"`
	Timeout   time.Duration `yaml:"timeout"    env:"API_TIMEOUT"    env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"API_USER_AGENT" env-default:"sortashort-companion"`
}

// SessionConfig - локальное хранилище сессии.
// Path пустой - <user config dir>/sortashort/<Key>.json.
type SessionConfig struct {
	Backend       string `yaml:"backend"        env:"SESSION_BACKEND"        env-default:"file"`
	Key           string `yaml:"key"            env:"SESSION_KEY"            env-default:"sortashort_session"`
	Path          string `yaml:"path"           env:"SESSION_PATH"`
	RedisAddr     string `yaml:"redis_addr"     env:"SESSION_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"SESSION_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"       env:"SESSION_REDIS_DB"       env-default:"0"`
}

// CatalogConfig - статические справочники (каталог и подборки).
// URL: путь к файлу, http(s):// или s3://bucket/key.
type CatalogConfig struct {
	CatalogURL     string   `yaml:"catalog_url"     env:"CATALOG_URL"     env-default:"shorts.json"`
	CollectionsURL string   `yaml:"collections_url" env:"COLLECTIONS_URL" env-default:"collections.json"`
	MediaBaseURL   string   `yaml:"media_base_url"  env:"MEDIA_BASE_URL"`
	S3             S3Config `yaml:"s3"`
}

// S3Config - доступ к S3-совместимому хранилищу для s3:// источников.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"   env:"S3_ENDPOINT"   env-default:"https://s3.amazonaws.com"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Region    string `yaml:"region"     env:"S3_REGION"     env-default:"us-east-1"`
}

// ReconcilerConfig - политика синхронизации профиля.
type ReconcilerConfig struct {
	// KeepStaleHistory - при неудачном обновлении оставлять последние известные
	// watched/reviews вместо пустых списков.
	KeepStaleHistory bool `yaml:"keep_stale_history" env:"RECONCILER_KEEP_STALE_HISTORY" env-default:"false"`
}

// SocialConfig - параметры социального графа.
type SocialConfig struct {
	MaxConcurrency int `yaml:"max_concurrency" env:"SOCIAL_MAX_CONCURRENCY" env-default:"6"`
}

// TimeoutConfig - таймаут обработки запроса view API.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"15s"`
}

// MustLoad - паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		return validate(&cfg)
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return validate(&cfg)
}

func validate(cfg *Config) (*Config, error) {
	switch cfg.Session.Backend {
	case SessionBackendFile, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base_url is required")
	}

	if cfg.Social.MaxConcurrency <= 0 {
		cfg.Social.MaxConcurrency = 1
	}

	return cfg, nil
}
