package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	setEnv(t, "BOOKSTORE_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.CatalogURL != "http://localhost:8080" {
		t.Errorf("CatalogURL = %q, want %q", cfg.CatalogURL, "http://localhost:8080")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 3000 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 3000)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.CatalogTimeout != 15 {
		t.Errorf("CatalogTimeout = %d, want 15", cfg.CatalogTimeout)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "BOOKSTORE_SESSION_SECRET", "custom-secret-key-32-bytes-long!")
	setEnv(t, "BOOKSTORE_CATALOG_URL", "https://api.example.com/")
	setEnv(t, "BOOKSTORE_SERVER_HOST", "0.0.0.0")
	setEnv(t, "BOOKSTORE_SERVER_PORT", "9000")
	setEnv(t, "BOOKSTORE_ENV", "production")
	setEnv(t, "BOOKSTORE_LOG_LEVEL", "debug")
	setEnv(t, "BOOKSTORE_CATALOG_TIMEOUT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Trailing slash is stripped so path joins stay predictable
	if cfg.CatalogURL != "https://api.example.com" {
		t.Errorf("CatalogURL = %q, want %q", cfg.CatalogURL, "https://api.example.com")
	}
	if cfg.ServerPort != 9000 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 9000)
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true in production")
	}
	if cfg.CatalogTimeout != 5 {
		t.Errorf("CatalogTimeout = %d, want 5", cfg.CatalogTimeout)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Error("Load() without session secret succeeded; want error")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	os.Clearenv()
	setEnv(t, "BOOKSTORE_SESSION_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Error("Load() with short secret succeeded; want error")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	os.Clearenv()
	setEnv(t, "BOOKSTORE_SESSION_SECRET", "test-secret-key-32-bytes-long!!!")
	setEnv(t, "BOOKSTORE_CATALOG_TIMEOUT", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() with zero timeout succeeded; want error")
	}
}

func TestServerAddr(t *testing.T) {
	cfg := Config{ServerHost: "localhost", ServerPort: 3000}
	if got := cfg.ServerAddr(); got != "localhost:3000" {
		t.Errorf("ServerAddr() = %q, want %q", got, "localhost:3000")
	}
}
