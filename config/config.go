package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const devJWTSecret = "dev-secret-change-in-production"

type Gallery struct {
	Name         string
	Description  string
	Address      string
	City         string
	PostalCode   string
	Country      string
	Phone        string
	Email        string
	WorkingHours string
}

type Config struct {
	Port       string
	DBURL      string
	JWTSecret  string
	Env        string
	CORSOrigin string

	AdminUsername string
	AdminPassword string
	SessionCookie string

	LogLevel  string
	LogFormat string

	Gallery Gallery
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadEnv reads an optional .env file into the process environment before Load.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBURL:      getEnv("DB_URL", "postgres://localhost:5432/art_gallery?sslmode=disable"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		Env:        getEnv("APP_ENV", "development"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3001"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),
		SessionCookie: getEnv("SESSION_COOKIE", "token"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Gallery: Gallery{
			Name:         getEnv("GALLERY_NAME", "Art Gallery"),
			Description:  getEnv("GALLERY_DESCRIPTION", "Contemporary art, exhibitions and events."),
			Address:      getEnv("GALLERY_ADDRESS", ""),
			City:         getEnv("GALLERY_CITY", ""),
			PostalCode:   getEnv("GALLERY_POSTAL_CODE", ""),
			Country:      getEnv("GALLERY_COUNTRY", ""),
			Phone:        getEnv("GALLERY_PHONE", ""),
			Email:        getEnv("GALLERY_EMAIL", ""),
			WorkingHours: getEnv("GALLERY_HOURS", ""),
		},
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("missing required environment variable: JWT_SECRET")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if !cfg.IsProduction() && !validOrigin(cfg.CORSOrigin) {
		return nil, fmt.Errorf("CORS_ORIGIN must be an http:// or https:// origin, got %q", cfg.CORSOrigin)
	}
	if cfg.SessionCookie == "" {
		return nil, fmt.Errorf("SESSION_COOKIE must not be empty")
	}

	return cfg, nil
}

// validOrigin accepts a scheme://host[:port] origin with no path.
func validOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == ""
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
