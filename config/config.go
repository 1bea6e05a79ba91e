// Package config loads the interpreter's YAML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = ".lox.yml"

// Config is the decoded settings file. Every field is optional.
type Config struct {
	// Prompt is printed before each REPL line.
	Prompt string `yaml:"prompt"`
	// PrintAST echoes each parsed statement as a tree before running it.
	PrintAST bool `yaml:"print_ast"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{Prompt: "> ", LogLevel: "warn"}
}

// ValidationError aggregates every problem found in a settings file.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}

	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}

	return b.String()
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a settings document on top of the defaults. Unknown
// keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var issues []string

	if _, err := parseLevel(c.LogLevel); err != nil {
		issues = append(issues, err.Error())
	}

	if strings.ContainsAny(c.Prompt, "\n\r") {
		issues = append(issues, "prompt must be a single line")
	}

	if len(issues) != 0 {
		return &ValidationError{Issues: issues}
	}

	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelWarn, fmt.Errorf("unknown log_level %q", name)
}
