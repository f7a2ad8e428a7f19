package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "REDIS_URL", "CATALOG_SHEET", "FETCH_TIMEOUT", "HTTP_ADDR", "WORKER_COUNT", "IMPORT_RATE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "Wall Ovens", cfg.CatalogSheet)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 1.0, cfg.ImportRate)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/appliancefit")
	t.Setenv("CATALOG_XLSX", "/data/catalog.xlsx")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("WORKER_COUNT", "12")
	t.Setenv("IMPORT_RATE", "0.5")

	cfg := Load()
	assert.Equal(t, "postgres://u:p@localhost/appliancefit", cfg.DatabaseURL)
	assert.Equal(t, "/data/catalog.xlsx", cfg.CatalogXLSX)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 12, cfg.WorkerCount)
	assert.Equal(t, 0.5, cfg.ImportRate)
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("IMPORT_RATE", "fast")

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 1.0, cfg.ImportRate)
}
