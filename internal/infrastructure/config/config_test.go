package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("CATALOG_URL", "")
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("CATALOG_TIMEOUT", "")
	t.Setenv("FETCH_WORKERS", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	if cfg.ServerAddress != ":8080" || cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected server settings: %+v", cfg)
	}
	if cfg.DBDriver != "sqlite" || cfg.DBDSN != "uvquiz.db" {
		t.Errorf("unexpected db settings: %s %s", cfg.DBDriver, cfg.DBDSN)
	}
	if cfg.CatalogURL != "http://localhost:3000" || cfg.CatalogFile != "" {
		t.Errorf("unexpected catalog settings: %s %q", cfg.CatalogURL, cfg.CatalogFile)
	}
	if cfg.CatalogTimeout != 10*time.Second {
		t.Errorf("expected 10s catalog timeout, got %v", cfg.CatalogTimeout)
	}
	if cfg.FetchWorkers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.FetchWorkers)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("expected [*], got %v", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "1m")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://quiz@localhost/quiz")
	t.Setenv("CATALOG_FILE", "catalog.yaml")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("FETCH_WORKERS", "8")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()

	if cfg.DBDriver != "postgres" || cfg.DBDSN != "postgres://quiz@localhost/quiz" {
		t.Errorf("unexpected db settings: %s %s", cfg.DBDriver, cfg.DBDSN)
	}
	if cfg.CatalogFile != "catalog.yaml" || cfg.CatalogTimeout != 3*time.Second {
		t.Errorf("unexpected catalog settings: %q %v", cfg.CatalogFile, cfg.CatalogTimeout)
	}
	if cfg.FetchWorkers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.FetchWorkers)
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.CORSOrigins)
	}
}
