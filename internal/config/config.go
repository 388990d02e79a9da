// Package config loads the generator configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the generator settings.
//
//	schema: schema.graphql
//	output: ./generated
//	package: model
//	store_import: entitygen/pkg/store
type Config struct {
	// Schema is the path of the SDL schema file.
	Schema string `yaml:"schema"`
	// Output is the directory generated files are written to.
	Output string `yaml:"output"`
	// Package is the package name of the generated files.
	Package string `yaml:"package"`
	// StoreImport is the import path of the boxed-value store runtime.
	StoreImport string `yaml:"store_import"`
}

// Default returns the configuration used when no file and no flags are given.
func Default() Config {
	return Config{
		Schema:      "schema.graphql",
		Output:      "./generated",
		Package:     "model",
		StoreImport: "entitygen/pkg/store",
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applying defaults for absent fields.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Schema == "" {
		cfg.Schema = def.Schema
	}

	if cfg.Output == "" {
		cfg.Output = def.Output
	}

	if cfg.Package == "" {
		cfg.Package = def.Package
	}

	if cfg.StoreImport == "" {
		cfg.StoreImport = def.StoreImport
	}
}
