package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/conduit-backend/internal/data/db"
	"github.com/yungbote/conduit-backend/internal/observability"
	"github.com/yungbote/conduit-backend/internal/platform/envutil"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type Config struct {
	Port    string
	LogMode string

	DB db.Config

	JWTSecretKey   string
	AccessTokenTTL time.Duration

	SlugMaxAttempts    int
	CORSAllowedOrigins []string

	MetricsEnabled bool
	Otel           observability.OtelConfig
}

// fileConfig is the optional YAML file named by CONFIG_FILE. Its values
// become the defaults that environment variables override.
type fileConfig struct {
	Port    string `yaml:"port"`
	LogMode string `yaml:"log_mode"`

	DB struct {
		Driver     string `yaml:"driver"`
		SQLitePath string `yaml:"sqlite_path"`
		Postgres   struct {
			Host     string `yaml:"host"`
			Port     string `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			Name     string `yaml:"name"`
			SSLMode  string `yaml:"sslmode"`
		} `yaml:"postgres"`
	} `yaml:"db"`

	JWTSecretKey          string   `yaml:"jwt_secret_key"`
	AccessTokenTTLSeconds int      `yaml:"access_token_ttl"`
	SlugMaxAttempts       int      `yaml:"slug_max_attempts"`
	CORSAllowedOrigins    []string `yaml:"cors_allowed_origins"`
	MetricsEnabled        *bool    `yaml:"metrics_enabled"`

	Otel struct {
		Enabled     bool    `yaml:"enabled"`
		ServiceName string  `yaml:"service_name"`
		Environment string  `yaml:"environment"`
		Endpoint    string  `yaml:"endpoint"`
		Headers     string  `yaml:"headers"`
		Insecure    bool    `yaml:"insecure"`
		SampleRatio float64 `yaml:"sample_ratio"`
	} `yaml:"otel"`
}

func readConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return fc, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func orString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func LoadConfig(log *logger.Logger) (Config, error) {
	fc, err := readConfigFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return Config{}, err
	}

	metricsDefault := true
	if fc.MetricsEnabled != nil {
		metricsDefault = *fc.MetricsEnabled
	}
	sampleDefault := fc.Otel.SampleRatio
	if sampleDefault <= 0 {
		sampleDefault = 1
	}

	cfg := Config{
		Port:    envutil.String("PORT", orString(fc.Port, "8080")),
		LogMode: envutil.String("LOG_MODE", orString(fc.LogMode, "development")),
		DB: db.Config{
			Driver: envutil.String("DB_DRIVER", orString(fc.DB.Driver, db.DriverPostgres)),
			Postgres: db.PostgresConfig{
				Host:     envutil.String("POSTGRES_HOST", orString(fc.DB.Postgres.Host, "localhost")),
				Port:     envutil.String("POSTGRES_PORT", orString(fc.DB.Postgres.Port, "5432")),
				User:     envutil.String("POSTGRES_USER", orString(fc.DB.Postgres.User, "postgres")),
				Password: envutil.String("POSTGRES_PASSWORD", fc.DB.Postgres.Password),
				Name:     envutil.String("POSTGRES_NAME", orString(fc.DB.Postgres.Name, "conduit")),
				SSLMode:  envutil.String("POSTGRES_SSLMODE", orString(fc.DB.Postgres.SSLMode, "disable")),
			},
			SQLitePath: envutil.String("SQLITE_PATH", orString(fc.DB.SQLitePath, "conduit.db")),
		},
		JWTSecretKey:       envutil.String("JWT_SECRET_KEY", fc.JWTSecretKey),
		AccessTokenTTL:     envutil.Seconds("ACCESS_TOKEN_TTL", time.Duration(orInt(fc.AccessTokenTTLSeconds, 3600))*time.Second),
		SlugMaxAttempts:    envutil.Int("SLUG_MAX_ATTEMPTS", orInt(fc.SlugMaxAttempts, 3)),
		CORSAllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS", fc.CORSAllowedOrigins),
		MetricsEnabled:     envutil.Bool("METRICS_ENABLED", metricsDefault),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", fc.Otel.Enabled),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", orString(fc.Otel.ServiceName, "conduit")),
			Environment: envutil.String("OTEL_ENVIRONMENT", fc.Otel.Environment),
			Version:     envutil.String("APP_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", fc.Otel.Endpoint),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", fc.Otel.Headers)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", fc.Otel.Insecure),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", sampleDefault),
		},
	}

	if cfg.JWTSecretKey == "" {
		if strings.EqualFold(cfg.LogMode, "production") {
			return Config{}, fmt.Errorf("JWT_SECRET_KEY is required in production")
		}
		cfg.JWTSecretKey = "defaultsecret"
		if log != nil {
			log.Warn("JWT_SECRET_KEY not set; using development default")
		}
	}
	if cfg.SlugMaxAttempts <= 0 {
		cfg.SlugMaxAttempts = 3
	}
	return cfg, nil
}
