package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/elearn")
	t.Setenv("JWT_SECRET", "secret")

	cfg := Load()
	if cfg.JWTIssuer != "elearn" {
		t.Errorf("JWTIssuer = %q", cfg.JWTIssuer)
	}
	if cfg.TokenTTLSeconds != 86400 {
		t.Errorf("TokenTTLSeconds = %d, want 86400", cfg.TokenTTLSeconds)
	}
	// Unset CORS_ORIGINS allows any origin.
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != "*" {
		t.Errorf("CorsOrigins = %v, want [*]", cfg.CorsOrigins)
	}
	if cfg.LogDir != "storage/logs" {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.LogRetentionDays != 7 {
		t.Errorf("LogRetentionDays = %d, want 7", cfg.LogRetentionDays)
	}
}

func TestLogRetentionClamped(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/elearn")
	t.Setenv("JWT_SECRET", "secret")

	t.Setenv("LOG_RETENTION_DAYS", "30")
	if got := Load().LogRetentionDays; got != 7 {
		t.Errorf("LogRetentionDays = %d, want clamp to 7", got)
	}
	t.Setenv("LOG_RETENTION_DAYS", "0")
	if got := Load().LogRetentionDays; got != 1 {
		t.Errorf("LogRetentionDays = %d, want clamp to 1", got)
	}
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 0},
		{raw: "http://a.test", want: 1},
		{raw: "http://a.test, http://b.test ,", want: 2},
	}
	for _, tt := range tests {
		if got := parseCSV(tt.raw); len(got) != tt.want {
			t.Errorf("parseCSV(%q) = %v, want %d items", tt.raw, got, tt.want)
		}
	}
}

func TestEnvOrInt(t *testing.T) {
	t.Setenv("SOME_INT", "17")
	if got := envOrInt("SOME_INT", 5); got != 17 {
		t.Errorf("envOrInt() = %d, want 17", got)
	}
	t.Setenv("SOME_INT", "not-a-number")
	if got := envOrInt("SOME_INT", 5); got != 5 {
		t.Errorf("envOrInt() fallback = %d, want 5", got)
	}
}
