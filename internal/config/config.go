package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "taller.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = "24h"
	defaultStorageDir      = "./storage"
	defaultStorageSecret   = "change-me-storage-secret"
	defaultSignedURLTTL    = "3600s"
	defaultMaxFotosPorCat  = 12
	defaultMaxFotoSize     = 10 * 1024 * 1024 // 10 MB
	defaultMaxDocSize      = 20 * 1024 * 1024 // 20 MB
	defaultOpenAIBaseURL   = "https://api.openai.com/v1"
	defaultOpenAIModel     = "gpt-4.1-mini"
	defaultGeminiModel     = "gemini-1.5-flash"
	defaultClimaBaseURL    = "https://api.open-meteo.com/v1"
	defaultClimaLatitud    = "-1.0286"
	defaultClimaLongitud   = "-79.4635"
	defaultClimaHTTPTimout = "10s"
)

// Config carries every runtime knob as a named field with a documented
// default, instead of ad-hoc option objects scattered per call site.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration

	// Blob storage: local directory layout plus signed-URL issuance.
	StorageDir           string
	StorageSecret        string
	SignedURLTTL         time.Duration
	MaxFotosPorCategoria int
	MaxFotoSize          int64
	MaxDocumentoSize     int64

	// External completion APIs.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string

	// Open-Meteo lookup for the workshop's coordinates.
	ClimaBaseURL  string
	ClimaLatitud  string
	ClimaLongitud string
	ClimaTimeout  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.StorageDir = strings.TrimSpace(getEnv("STORAGE_DIR", defaultStorageDir))
	cfg.StorageSecret = strings.TrimSpace(getEnv("STORAGE_SIGNING_SECRET", defaultStorageSecret))
	cfg.SignedURLTTL, err = parseDurationEnv("SIGNED_URL_TTL", defaultSignedURLTTL)
	if err != nil {
		return nil, err
	}
	cfg.MaxFotosPorCategoria, err = parseIntEnv("MAX_FOTOS_POR_CATEGORIA", defaultMaxFotosPorCat)
	if err != nil {
		return nil, err
	}
	maxSize, err := parseIntEnv("MAX_FOTO_SIZE", defaultMaxFotoSize)
	if err != nil {
		return nil, err
	}
	cfg.MaxFotoSize = int64(maxSize)
	maxDocSize, err := parseIntEnv("MAX_DOCUMENTO_SIZE", defaultMaxDocSize)
	if err != nil {
		return nil, err
	}
	cfg.MaxDocumentoSize = int64(maxDocSize)

	cfg.OpenAIAPIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	cfg.OpenAIBaseURL = strings.TrimSpace(getEnv("OPENAI_BASE_URL", defaultOpenAIBaseURL))
	cfg.OpenAIModel = strings.TrimSpace(getEnv("OPENAI_MODEL", defaultOpenAIModel))
	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	cfg.GeminiModel = strings.TrimSpace(getEnv("GEMINI_MODEL", defaultGeminiModel))

	cfg.ClimaBaseURL = strings.TrimSpace(getEnv("CLIMA_BASE_URL", defaultClimaBaseURL))
	cfg.ClimaLatitud = strings.TrimSpace(getEnv("CLIMA_LATITUD", defaultClimaLatitud))
	cfg.ClimaLongitud = strings.TrimSpace(getEnv("CLIMA_LONGITUD", defaultClimaLongitud))
	cfg.ClimaTimeout, err = parseDurationEnv("CLIMA_TIMEOUT", defaultClimaHTTPTimout)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s signed_url_ttl=%s max_fotos=%d", cfg.AppEnv, cfg.SignedURLTTL, cfg.MaxFotosPorCategoria)
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.SignedURLTTL <= 0 {
		return fmt.Errorf("SIGNED_URL_TTL must be > 0")
	}
	if cfg.MaxFotosPorCategoria <= 0 {
		return fmt.Errorf("MAX_FOTOS_POR_CATEGORIA must be > 0")
	}
	if cfg.MaxFotoSize <= 0 {
		return fmt.Errorf("MAX_FOTO_SIZE must be > 0")
	}
	if cfg.MaxDocumentoSize <= 0 {
		return fmt.Errorf("MAX_DOCUMENTO_SIZE must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.StorageSecret, defaultStorageSecret) {
			return fmt.Errorf("in prod/release STORAGE_SIGNING_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
