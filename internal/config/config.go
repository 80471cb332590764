package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	StorePath      string
	TranscribeURL  string
	SessionTTL     time.Duration
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		StorePath:      getEnv("STORE_PATH", "rhive.db"),
		TranscribeURL:  os.Getenv("TRANSCRIBE_URL"),
		SessionTTL:     parseSessionTTL(os.Getenv("SESSION_TTL")),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseSessionTTL(value string) time.Duration {
	if value == "" {
		return 12 * time.Hour
	}
	ttl, err := time.ParseDuration(value)
	if err != nil || ttl <= 0 {
		return 12 * time.Hour
	}
	return ttl
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
