package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DatabaseURL  string
	RedisURL     string
	CatalogXLSX  string
	CatalogSheet string
	GVizSheetID  string

	SourceBaseURL string
	UserAgent     string
	FetchTimeout  time.Duration

	HTTPAddr    string
	MetricsPort string

	WorkerCount int
	// ImportRate is the number of page fetches per second the importer allows.
	ImportRate float64

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	// .env at the project root when run from cmd/<name>, then the working directory
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		CatalogXLSX:   os.Getenv("CATALOG_XLSX"),
		CatalogSheet:  getEnv("CATALOG_SHEET", "Wall Ovens"),
		GVizSheetID:   os.Getenv("GVIZ_SHEET_ID"),
		SourceBaseURL: os.Getenv("SOURCE_BASE_URL"),
		UserAgent:     os.Getenv("USER_AGENT"),
		FetchTimeout:  getDuration("FETCH_TIMEOUT", 30*time.Second),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
		WorkerCount:   getInt("WORKER_COUNT", 5),
		ImportRate:    getFloat("IMPORT_RATE", 1),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", k).Str("value", v).Int("default", d).Msg("[Config] invalid integer, using default")
		return d
	}
	return n
}

func getFloat(k string, d float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Warn().Str("key", k).Str("value", v).Float64("default", d).Msg("[Config] invalid number, using default")
		return d
	}
	return f
}

func getDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	dur, err := time.ParseDuration(v)
	if err != nil || dur <= 0 {
		log.Warn().Str("key", k).Str("value", v).Dur("default", d).Msg("[Config] invalid duration, using default")
		return d
	}
	return dur
}
