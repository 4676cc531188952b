package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"iddfs-go/internal/fstree"
)

const (
	EnvSeed       = "IDDFS_SEED"
	EnvOutputFile = "IDDFS_OUTPUT_FILE"
)

type Config struct {
	Skip       []string               `yaml:"skip" toml:"skip"`
	OutputFile string                 `yaml:"output_file" toml:"output_file"`
	Generator  fstree.GeneratorConfig `yaml:"generator" toml:"generator"`
}

func DefaultConfig() *Config {
	return &Config{
		Skip: []string{
			".git/",
			".svn/",
			"node_modules/",
			"vendor/",
			"__pycache__/",
			"*.o",
			"*.so",
			"*.exe",
			"bin/",
			"dist/",
			"*.tmp",
			"*.swp",
			"*.log",
			".DS_Store",
			"Thumbs.db",
		},
		Generator: fstree.DefaultGeneratorConfig(),
	}
}

// LoadConfig reads path as TOML when it has a .toml extension and as YAML
// otherwise. A missing file yields the defaults. Generator settings absent
// from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{Generator: fstree.DefaultGeneratorConfig()}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	// Initialize Skip slice if nil (for empty configs)
	if cfg.Skip == nil {
		cfg.Skip = []string{}
	}

	return &cfg, nil
}

// ApplyEnv overrides settings from IDDFS_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Generator.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvOutputFile); ok && v != "" {
		c.OutputFile = v
	}
	return nil
}
