package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI flags for file-based runs. Flags win over the
// file; the file wins over defaults.
type Config struct {
	Rows     int    `yaml:"rows"`
	Seed     int64  `yaml:"seed"`
	Input    string `yaml:"input"`
	OutDir   string `yaml:"outdir"`
	Output   string `yaml:"output"`
	TopWords int    `yaml:"top_words"`
}

func defaultConfig() Config {
	return Config{
		Rows:     100,
		Seed:     42,
		OutDir:   ".",
		TopWords: 10,
	}
}

// loadConfig reads a YAML config file. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
