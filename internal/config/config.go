// Package config holds runtime settings for the grader tools. Defaults
// come first, GRADER_* environment variables override them, and an
// optional grader.yaml in the workspace overrides both.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Workers    int    `yaml:"workers"`
	ListenAddr string `yaml:"listen_addr"`
	Trace      bool   `yaml:"trace"`
	HTMLReport bool   `yaml:"html_report"`
}

func Default() Config {
	return Config{
		Workers:    getenvInt("GRADER_WORKERS", 4),
		ListenAddr: getenvStr("GRADER_LISTEN_ADDR", ":8085"),
		Trace:      getenvBool("GRADER_TRACE", false),
		HTMLReport: getenvBool("GRADER_HTML_REPORT", true),
	}
}

// Load returns the defaults merged with the YAML file at path. A missing
// file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = ":8085"
	}
}

func (c Config) validate() error {
	if c.Workers > 256 {
		return fmt.Errorf("workers %d is out of range", c.Workers)
	}
	return nil
}

func getenvStr(name, fallback string) string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return raw
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getenvBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}
