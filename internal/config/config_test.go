package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_URL", "AUTH_RPS", "AUTH_BURST", "STATE_DIR"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port=%q", cfg.Port)
	}
	if cfg.StoreURL != "http://localhost:9090" {
		t.Errorf("StoreURL=%q", cfg.StoreURL)
	}
	if cfg.AuthRPS != 5 || cfg.AuthBurst != 10 {
		t.Errorf("rate defaults: %v/%v", cfg.AuthRPS, cfg.AuthBurst)
	}
	if cfg.StateDir == "" {
		t.Error("StateDir empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("STORE_URL", "https://store.example.com")
	t.Setenv("AUTH_RPS", "2.5")
	t.Setenv("AUTH_BURST", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "3000" || cfg.StoreURL != "https://store.example.com" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AuthRPS != 2.5 || cfg.AuthBurst != 3 {
		t.Errorf("rate overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel=%q", cfg.LogLevel)
	}
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("AUTH_RPS", "fast")
	t.Setenv("AUTH_BURST", "many")

	cfg := Load()
	if cfg.AuthRPS != 5 || cfg.AuthBurst != 10 {
		t.Errorf("expected defaults on unparsable values: %+v", cfg)
	}
}
