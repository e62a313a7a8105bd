package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full docsift configuration.
type Config struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	JournalDB string `yaml:"journal_db"`
	Listen    string `yaml:"listen"`
	Language  string `yaml:"language"` // force a language code; empty = auto-detect
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:  "input",
		OutputDir: "output",
		JournalDB: "",
		Listen:    ":8086",
	}
}

// LoadConfig reads and parses a YAML config file. Returns DefaultConfig merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Listen == "" {
		return fmt.Errorf("listen is required")
	}
	return nil
}
