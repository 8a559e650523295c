package main

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config is read from the environment; godotenv/autoload fills it from .env.
type Config struct {
	Port      string
	BasePath  string
	StaticDir string

	// DBPath enables visit tracking and the admin pages when set.
	DBPath        string
	AdminUsername string
	AdminPassword string
	Retention     time.Duration

	ProfileFile string
}

const defaultRetention = 365 * 24 * time.Hour

func loadConfig() Config {
	cfg := Config{
		Port:          os.Getenv("PORT"),
		BasePath:      normalizeBasePath(getenv("BASE_PATH", "/portfolio")),
		StaticDir:     getenv("STATIC_DIR", "./static"),
		DBPath:        os.Getenv("DB_PATH"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Retention:     defaultRetention,
		ProfileFile:   os.Getenv("PROFILE_FILE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := os.Getenv("VISIT_RETENTION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Printf("Ignoring VISIT_RETENTION=%q: want a positive duration like 8760h", v)
		} else {
			cfg.Retention = d
		}
	}

	// Default credentials for development (set both in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}
	return cfg
}

// getenv returns the variable, or def when it is unset. An explicitly empty
// value is kept.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// normalizeBasePath turns "portfolio/", "/portfolio" and "/portfolio/" into
// "/portfolio", and "" or "/" into "".
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
