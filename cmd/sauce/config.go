package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config is the optional config file (~/.config/sauce/config.yaml).
// Flags given on the command line always win.
type Config struct {
	// Defaults for new records
	Author string `yaml:"author"`
	Group  string `yaml:"group"`

	StripMode string `yaml:"strip_mode"`
	Codepage  string `yaml:"codepage"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ServerAddress  string `yaml:"server_address"`
	MaxUploadBytes *int64 `yaml:"max_upload_bytes"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sauce", "config.yaml")
}

// LoadConfig reads path. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func applyGlobalConfig(c *cli.Command, cfg Config) {
	if cfg.Codepage != "" && !c.IsSet("codepage") {
		codepage = cfg.Codepage
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

func applyStripConfig(c *cli.Command, cfg Config, mode *string) {
	if cfg.StripMode != "" && !c.IsSet("mode") {
		*mode = cfg.StripMode
	}
}

func applyWriteConfig(c *cli.Command, cfg Config, author, group *string) {
	if cfg.Author != "" && !c.IsSet("author") {
		*author = cfg.Author
	}
	if cfg.Group != "" && !c.IsSet("group") {
		*group = cfg.Group
	}
}

func applyServeConfig(c *cli.Command, cfg Config, addr *string, maxUpload *int64, mode *string) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
	if cfg.MaxUploadBytes != nil && !c.IsSet("max-upload") {
		*maxUpload = *cfg.MaxUploadBytes
	}
	applyStripConfig(c, cfg, mode)
}
