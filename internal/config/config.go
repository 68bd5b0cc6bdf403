package config

import (
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config holds the application configuration, loaded from the
// environment (with optional .env file support).
type Config struct {
	Port      string
	DBPath    string
	SecretKey string
	Debug     bool
}

// Load reads configuration from the environment. The session secret is
// required outside debug mode; in debug mode a random key is generated
// so sessions do not survive a restart.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:      getEnv("BLOGSITE_PORT", "8080"),
		DBPath:    getEnv("BLOGSITE_DB_PATH", "./blogsite.db"),
		SecretKey: getEnv("BLOGSITE_SECRET_KEY", ""),
		Debug:     getEnv("BLOGSITE_DEBUG", "false") == "true",
	}

	if cfg.SecretKey == "" {
		if !cfg.Debug {
			log.Fatal("BLOGSITE_SECRET_KEY is required")
		}
		cfg.SecretKey = uuid.NewString()
		log.Println("BLOGSITE_SECRET_KEY not set, using a generated key (debug mode)")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
