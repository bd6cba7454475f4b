package aoc

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Year != 2021 || cfg.InputDir != "." || cfg.Fetch {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
year = 2022
input_dir = "inputs"
session_file = "/tmp/session"
fetch = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Year != 2022 {
		t.Fatalf("unexpected year: %d", cfg.Year)
	}
	if cfg.InputDir != "inputs" {
		t.Fatalf("unexpected input dir: %q", cfg.InputDir)
	}
	if cfg.SessionFile != "/tmp/session" {
		t.Fatalf("unexpected session file: %q", cfg.SessionFile)
	}
	if !cfg.Fetch {
		t.Fatalf("expected fetch enabled")
	}
}

func TestLoadConfigRejects(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key": `yaer = 2021`,
		"bad year":    `year = 1999`,
		"empty dir":   `input_dir = " "`,
		"no session":  "fetch = true\nsession_file = \"\"",
		"syntax":      `year = `,
	} {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Errorf("%s: load config succeeded", name)
		}
	}
}
