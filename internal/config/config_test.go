package config

import "testing"

func TestAPIOrigin(t *testing.T) {
	t.Run("strips the api suffix", func(t *testing.T) {
		c := Config{APIBaseURL: "http://localhost:3333/api"}
		if got := c.APIOrigin(); got != "http://localhost:3333" {
			t.Fatalf("unexpected origin %q", got)
		}
	})

	t.Run("leaves other bases untouched", func(t *testing.T) {
		c := Config{APIBaseURL: "https://os.example.com"}
		if got := c.APIOrigin(); got != "https://os.example.com" {
			t.Fatalf("unexpected origin %q", got)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIBaseURL == "" || cfg.StateDir == "" || cfg.Port == "" {
		t.Fatalf("expected defaults for every field: %+v", cfg)
	}
}
