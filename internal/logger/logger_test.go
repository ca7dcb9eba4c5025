package logger

import (
	"strings"
	"testing"

	"github.com/samvad-hq/samvad-account-client/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestInitLevels(t *testing.T) {
	t.Cleanup(func() { S = nil })

	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"info":    zapcore.InfoLevel,
		"DEBUG":   zapcore.DebugLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range cases {
		sugar, err := Init(&config.Config{LogLevel: in})
		if err != nil {
			t.Fatalf("Init(%q): %v", in, err)
		}
		if got := sugar.Level(); got != want {
			t.Fatalf("Init(%q): expected level %v, got %v", in, want, got)
		}
		if S != sugar {
			t.Fatalf("Init(%q): package logger not set", in)
		}
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	S = nil
	t.Cleanup(func() { S = nil })

	_, err := Init(&config.Config{LogLevel: "verbose"})
	if err == nil {
		t.Fatalf("expected error for unknown log_level")
	}
	if !strings.Contains(err.Error(), `"verbose"`) {
		t.Fatalf("expected error to name the level, got %v", err)
	}
	if S != nil {
		t.Fatalf("package logger must stay unset after a failed Init")
	}
}

func TestInitRejectsNilConfig(t *testing.T) {
	if _, err := Init(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	S = nil
	InfoObj("ignored", "k", 1)
	ErrorObj("ignored", "k", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close without Init: %v", err)
	}
}
