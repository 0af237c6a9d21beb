// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	units "github.com/docker/go-units"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Checks  string `yaml:"checks"`
		Workers int    `yaml:"workers"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Input limits
	Input struct {
		MaxSize     string `yaml:"max_size"` // human size, e.g. "64MB"
		MaxPDFPages int    `yaml:"max_pdf_pages"`
	} `yaml:"input"`

	// Phone number validation
	Phone struct {
		AreaCodesFile string `yaml:"area_codes_file"` // empty uses the embedded list
	} `yaml:"phone"`

	// Logging
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	config := &Config{}
	config.Defaults.Checks = "all"
	config.Defaults.Workers = 4
	config.Defaults.NoColor = false
	config.Input.MaxSize = "64MB"
	config.Input.MaxPDFPages = 50
	config.Logging.Level = "info"
	config.Logging.Format = "console"
	return config
}

// LoadConfig loads configuration from the specified file path. Fields the
// file leaves out keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := decodeConfig(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// decodeConfig decodes a YAML mapping over config. Unknown keys and
// documents that are not mappings are rejected; an empty document leaves
// config untouched.
func decodeConfig(data []byte, config *Config) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	if root := doc.Content[0]; root.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: top level must be a mapping of settings, got %s", root.Line, nodeKind(root.Kind))
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func nodeKind(kind yaml.Kind) string {
	switch kind {
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an unexpected node"
	}
}

// FindConfigFile looks for a configuration file in standard locations:
// the working directory first, then $XDG_CONFIG_HOME (or ~/.config).
func FindConfigFile() string {
	for _, name := range []string{"pii-recognition.yaml", "pii-recognition.yml", ".pii-recognition.yaml", ".pii-recognition.yml"} {
		if fileExists(name) {
			return name
		}
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		xdgConfigFile := filepath.Join(xdgConfig, "pii-recognition", name)
		if fileExists(xdgConfigFile) {
			return xdgConfigFile
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ValidateConfig checks value ranges and formats
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if config.Defaults.Workers < 1 {
		return fmt.Errorf("defaults.workers must be at least 1, got %d", config.Defaults.Workers)
	}
	if config.Input.MaxPDFPages < 0 {
		return fmt.Errorf("input.max_pdf_pages cannot be negative, got %d", config.Input.MaxPDFPages)
	}
	if _, err := config.MaxInputBytes(); err != nil {
		return err
	}

	switch strings.ToLower(config.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", config.Logging.Level)
	}
	switch strings.ToLower(config.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", config.Logging.Format)
	}

	return nil
}

// MaxInputBytes parses input.max_size. An empty value or "0" disables the
// limit and returns zero.
func (c *Config) MaxInputBytes() (int64, error) {
	if c.Input.MaxSize == "" {
		return 0, nil
	}
	size, err := units.FromHumanSize(c.Input.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("input.max_size: %w", err)
	}
	if size < 0 {
		return 0, fmt.Errorf("input.max_size cannot be negative, got %q", c.Input.MaxSize)
	}
	return size, nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns the default configuration
// along with the error so callers can report it.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}
