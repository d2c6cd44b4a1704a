package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config carries every external knob the application needs. It is built
// once in main and injected through fx; nothing else reads the environment.
type Config struct {
	Port        string
	DatabaseURL string

	// Identity provider (GoTrue-style admin API).
	IdentityURL        string
	IdentityServiceKey string
	SessionJWTSecret   string

	// Comma-separated allow-list of admin e-mails.
	AdminEmails []string

	// PagBank gateway.
	PagBankAPIURL string
	PagBankToken  string

	// Base URL of this deployment, used to build webhook notification URLs.
	AppBaseURL string

	// Course pricing, minor currency units (9700 = R$97,00).
	CoursePriceCents int64

	ContentDir string

	// TestMode disables the access gate entirely. Never enable in
	// production; startup logs a warning when it is on.
	TestMode bool
}

func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		IdentityURL:        os.Getenv("IDENTITY_URL"),
		IdentityServiceKey: os.Getenv("IDENTITY_SERVICE_KEY"),
		SessionJWTSecret:   os.Getenv("SESSION_JWT_SECRET"),
		PagBankAPIURL:      getEnv("PAGBANK_API_URL", "https://api.pagseguro.com"),
		PagBankToken:       os.Getenv("PAGBANK_TOKEN"),
		AppBaseURL:         os.Getenv("APP_BASE_URL"),
		CoursePriceCents:   getEnvInt64("COURSE_PRICE_CENTS", 9700),
		ContentDir:         getEnv("CONTENT_DIR", "content"),
		TestMode:           os.Getenv("AUTH_TEST_MODE") == "true",
	}

	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if e = strings.TrimSpace(e); e != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, e)
		}
	}

	if cfg.TestMode {
		log.Println("WARNING: AUTH_TEST_MODE is enabled, all authorization checks are bypassed")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
