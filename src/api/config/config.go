package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	MySQLDSN  string
	RedisURL  string
	JWTSecret string
	Port      string

	// Capability keys; absence gates a feature, never startup.
	SerperKey string
	GeminiKey string
	OpenAIKey string

	RateLimitPerMinute int
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	rpm, _ := strconv.Atoi(getenv("RATE_LIMIT_PER_MINUTE", "60"))
	return Config{
		MySQLDSN:           getenv("MYSQL_DSN", "verilens:verilens@tcp(127.0.0.1:3306)/verilens?parseTime=true"),
		RedisURL:           getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		JWTSecret:          getenv("JWT_SECRET", "dev-secret-change-me"),
		Port:               getenv("PORT", "5000"),
		SerperKey:          os.Getenv("SERPER_API_KEY"),
		GeminiKey:          os.Getenv("GOOGLE_API_KEY"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		RateLimitPerMinute: rpm,
	}
}
