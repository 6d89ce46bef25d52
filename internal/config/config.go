package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	DBPath    string
	LogLevel  string
	LogFormat string
	JWTSecret string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:      getenv("TABLON_ADDR", ":8080"),
		DBPath:    getenv("TABLON_DB_PATH", "tablon.db"),
		LogLevel:  getenv("TABLON_LOG_LEVEL", "info"),
		LogFormat: getenv("TABLON_LOG_FORMAT", "text"),
		JWTSecret: getenv("TABLON_JWT_SECRET", ""),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("missing env: TABLON_JWT_SECRET")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
