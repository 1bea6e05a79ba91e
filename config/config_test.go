package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader("prompt: \"lox> \"\nprint_ast: true\nlog_level: debug\n"))
	if err != nil {
		t.Fatal(err)
	}

	want := Config{Prompt: "lox> ", PrintAST: true, LogLevel: "debug"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("print_ast: true\n"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Prompt != "> " || !cfg.PrintAST {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestUnknownKeyRejected(t *testing.T) {
	if _, err := Parse(strings.NewReader("promt: x\n")); err == nil {
		t.Errorf("expected an error for an unknown key")
	}
}

func TestValidation(t *testing.T) {
	_, err := Parse(strings.NewReader("log_level: loud\nprompt: \"a\\nb\"\n"))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if len(verr.Issues) != 2 {
		t.Errorf("expected 2 issues, got %v", verr.Issues)
	}

	if !strings.HasPrefix(verr.Error(), "config validation failed:") {
		t.Errorf("unexpected message %q", verr.Error())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := os.WriteFile(path, []byte("log_level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Level() != slog.LevelError {
		t.Errorf("Level() = %v, want error", cfg.Level())
	}
}
