package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Errorf("expected defaults %+v, got %+v", Defaults(), s)
	}
}

func TestLoadLayering(t *testing.T) {
	path := writeEnvFile(t, "PARTICLES_THEME=light\nPARTICLES_WIDTH=800\nPARTICLES_FPS=30\n")
	t.Setenv("PARTICLES_WIDTH", "1024")

	s, err := Load([]string{"-fps", "24", "-backend", "Terminal"}, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("theme from .env: expected light, got %q", s.Theme)
	}
	if s.Width != 1024 {
		t.Errorf("environment should override .env: expected 1024, got %d", s.Width)
	}
	if s.FrameRate != 24 {
		t.Errorf("flag should override .env: expected 24, got %d", s.FrameRate)
	}
	if s.Backend != BackendTerminal {
		t.Errorf("expected terminal backend, got %q", s.Backend)
	}
}

func TestLoadSeedAndBools(t *testing.T) {
	t.Setenv("PARTICLES_SEED", "42")
	t.Setenv("PARTICLES_SOUND", "true")
	t.Setenv("PARTICLES_DEBUG", "1")

	s, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Seed != 42 || !s.Sound || !s.Debug {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad width", env: map[string]string{"PARTICLES_WIDTH": "wide"}},
		{name: "bad bool", env: map[string]string{"PARTICLES_SOUND": "loud"}},
		{name: "bad seed", env: map[string]string{"PARTICLES_SEED": "-3"}},
		{name: "unknown backend", args: []string{"-backend", "canvas"}},
		{name: "unknown theme", args: []string{"-theme", "sepia"}},
		{name: "zero height", args: []string{"-height", "0"}},
		{name: "zero fps", args: []string{"-fps", "0"}},
		{name: "unknown flag", args: []string{"-volume", "11"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.args, ""); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidateNormalizesTheme(t *testing.T) {
	s := Defaults()
	s.Theme = " LIGHT\t"
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("expected lowercase theme, got %q", s.Theme)
	}
}

func TestLoadTrimsTheme(t *testing.T) {
	t.Setenv("PARTICLES_THEME", " light ")
	s, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("expected light, got %q", s.Theme)
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"-h"}, "")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)
	for _, name := range []string{"-backend", "-theme", "-pick-theme", "-seed", "-sound"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("usage is missing %s:\n%s", name, buf.String())
		}
	}
}
