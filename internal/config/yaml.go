// Copyright 2026 The Neurogen Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the repo config from dir. .neurogen.yaml is preferred over
// .neurogen.toml. If neither file exists, it returns a zero-value Config and nil error.
func Load(dir string) (*Config, error) {
	yamlPath := filepath.Join(dir, FileName)
	tomlPath := filepath.Join(dir, TOMLFileName)

	hasYAML, hasTOML := exists(yamlPath), exists(tomlPath)
	switch {
	case hasYAML:
		if hasTOML {
			slog.Warn("both config files present, ignoring toml", "using", yamlPath, "ignored", tomlPath)
		}
		return LoadFile(yamlPath)
	case hasTOML:
		return LoadFile(tomlPath)
	}
	return &Config{}, nil
}

// LoadFile reads a single config file, decoding TOML for a .toml extension and
// YAML otherwise. Unlike Load, a missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		return nil, err
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// WriteFile writes cfg as YAML to path, creating parent directories.
func WriteFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return err
	}
	if err := Write(f, cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}
