package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"daybook/internal/cluster"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	Timezone string   `json:"timezone"`
	Clusters []string `json:"clusters"`
	Output   string   `json:"output"`
}

func Load(path string) (*Config, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	normalize(&cfg)
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func Default() *Config {
	return &Config{
		Timezone: "local",
		Clusters: append([]string{}, cluster.DefaultClusters...),
		Output:   OutputText,
	}
}

func LoadOrCreate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// AddCluster appends name to the vocabulary. It reports false when the name
// is empty or already present.
func (c *Config) AddCluster(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	for _, existing := range c.Clusters {
		if existing == name {
			return false
		}
	}
	c.Clusters = append(c.Clusters, name)
	return true
}

// RemoveCluster drops name from the vocabulary and reports whether it was there.
func (c *Config) RemoveCluster(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	kept := c.Clusters[:0]
	removed := false
	for _, existing := range c.Clusters {
		if existing == name {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	c.Clusters = kept
	return removed
}

func normalize(cfg *Config) {
	if cfg.Timezone == "" {
		cfg.Timezone = "local"
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if cfg.Output != OutputJSON {
		cfg.Output = OutputText
	}
	if cfg.Clusters == nil {
		cfg.Clusters = append([]string{}, cluster.DefaultClusters...)
		return
	}
	cfg.Clusters = cluster.Normalize(cfg.Clusters)
}
