package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, dir, content string) string {
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigWhenMissing(t *testing.T) {
	home := t.TempDir()
	cfg, err := loadConfig("", home)
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.Prompt != ">> " || !cfg.Color || !cfg.Banner || cfg.level != logrus.WarnLevel {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.HistoryFile != filepath.Join(home, ".monkey_history") {
		t.Errorf("unexpected history file %s", cfg.HistoryFile)
	}
}

func TestConfigInHome(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".monkey.yaml"), []byte("prompt: \"$ \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig("", home)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "$ " {
		t.Errorf("prompt should be read from the home directory, got %q", cfg.Prompt)
	}
}

func TestExplicitConfig(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, t.TempDir(), `
prompt: "monkey> "
history_file: ~/history
color: false
log_level: debug
banner: false
`)
	cfg, err := loadConfig(path, home)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "monkey> " || cfg.Color || cfg.Banner {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.level != logrus.DebugLevel {
		t.Errorf("level should be debug instead of %s", cfg.level)
	}
	if cfg.HistoryFile != filepath.Join(home, "history") {
		t.Errorf("history file should be expanded, got %s", cfg.HistoryFile)
	}
}

func TestEmptyConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, t.TempDir(), ""), t.TempDir())
	if err != nil {
		t.Fatalf("empty config should not fail: %v", err)
	}
	if cfg.Prompt != ">> " {
		t.Errorf("empty config should keep defaults, got %+v", cfg)
	}
}

func TestConfigErrors(t *testing.T) {
	home := t.TempDir()

	_, err := loadConfig(filepath.Join(home, "missing.yaml"), home)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("explicit missing config should fail with not exist, got %v", err)
	}

	_, err = loadConfig(writeConfig(t, t.TempDir(), "colour: true\n"), home)
	if err == nil {
		t.Errorf("unknown keys should fail")
	}

	_, err = loadConfig(writeConfig(t, t.TempDir(), "log_level: loud\n"), home)
	if !errors.Is(err, errInvalidLogLevel) {
		t.Errorf("invalid log level should fail with errInvalidLogLevel, got %v", err)
	}
}
