package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile  = ".monkey.yaml"
	defaultHistoryFile = ".monkey_history"
)

var errInvalidLogLevel = errors.New("invalid log_level")

type config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	LogLevel    string `yaml:"log_level"`
	Banner      bool   `yaml:"banner"`

	level logrus.Level
}

func defaultConfig(home string) *config {
	return &config{
		Prompt:      ">> ",
		HistoryFile: filepath.Join(home, defaultHistoryFile),
		Color:       true,
		LogLevel:    "warn",
		Banner:      true,
		level:       logrus.WarnLevel,
	}
}

// loadConfig reads the configuration at path. With an empty path the file
// in the home directory is used if it exists.
func loadConfig(path, home string) (*config, error) {
	cfg := defaultConfig(home)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, defaultConfigFile)
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(home); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *config) validate(home string) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, c.LogLevel)
	}
	c.level = level

	if strings.HasPrefix(c.HistoryFile, "~/") {
		c.HistoryFile = filepath.Join(home, c.HistoryFile[2:])
	}
	return nil
}
