package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE", "")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBase != DefaultAPIBase {
		t.Fatalf("expected fallback base url %q, got %q", DefaultAPIBase, cfg.APIBase)
	}
	if cfg.RequestTimeout != 5*time.Minute {
		t.Fatalf("expected 5m timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.MaxBodyBytes != 1073741824 {
		t.Fatalf("expected 1GiB body limit, got %d", cfg.MaxBodyBytes)
	}
	if cfg.SessionType != "bbolt" {
		t.Fatalf("unexpected session type %q", cfg.SessionType)
	}
}

func TestLoadBaseURLOverride(t *testing.T) {
	t.Setenv("API_BASE", "https://api.example.com/v2/")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBase != "https://api.example.com/v2/" {
		t.Fatalf("expected override base url, got %q", cfg.APIBase)
	}
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("API_BASE", "api/v1")

	if _, err := load(viper.New()); err == nil {
		t.Fatalf("expected error for relative api_base")
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_MS", "0")

	if _, err := load(viper.New()); err == nil {
		t.Fatalf("expected error for zero request_timeout_ms")
	}
}

func TestLoadTrimsSessionToken(t *testing.T) {
	t.Setenv("SESSION_TOKEN", "  abc  ")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SessionToken != "abc" {
		t.Fatalf("expected trimmed token, got %q", cfg.SessionToken)
	}
}

func TestResolveBaseURL(t *testing.T) {
	cases := map[string]string{
		"":                       DefaultAPIBase,
		"   ":                    DefaultAPIBase,
		"https://x.example/api/": "https://x.example/api/",
	}
	for in, want := range cases {
		if got := ResolveBaseURL(in); got != want {
			t.Fatalf("ResolveBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}
