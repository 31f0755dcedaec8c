package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

func LoadPackagesConfig() (*PackagesConfig, error) {

	path := os.Getenv("PACKAGES_CONFIG_PATH")
	if path == "" {
		path = "configs/packages.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg PackagesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PackagesConfig) {
	if cfg.LawsDir == "" {
		cfg.LawsDir = "./laws"
	}
}

func (c *PackagesConfig) Validate() error {
	seen := make(map[string]bool)
	for _, p := range c.Packages {
		if p.ID == "" {
			return fmt.Errorf("package entry without id")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate package id: %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
