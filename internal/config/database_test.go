package config

import (
	"strings"
	"testing"
)

func TestDBConfigDefaults(t *testing.T) {
	cfg := LoadDBConfig()
	if cfg.Host == "" || cfg.Port == "" || cfg.Name == "" || cfg.SSLMode == "" {
		t.Errorf("defaults missing: %+v", cfg)
	}

	dsn := cfg.DSN()
	for _, part := range []string{
		"host=" + cfg.Host,
		"port=" + cfg.Port,
		"dbname=" + cfg.Name,
		"sslmode=" + cfg.SSLMode,
	} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}
}

func TestEnvOrFallback(t *testing.T) {
	if got := envOr("RECRUITAI_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("envOr = %q, want fallback", got)
	}
	t.Setenv("RECRUITAI_TEST_SET_KEY", "value")
	if got := envOr("RECRUITAI_TEST_SET_KEY", "fallback"); got != "value" {
		t.Errorf("envOr = %q, want value", got)
	}
}
