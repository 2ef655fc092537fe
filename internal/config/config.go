// Package config loads the CLI's optional YAML configuration file.
// File values sit between built-in defaults and command-line flags:
// flags override the file, the file overrides the defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/testgenx/testgen"
	"github.com/testgenx/testgen/internal/oserr"
)

// Config mirrors a .testgen.yaml file. Pointer fields distinguish
// "unset" from an explicit false.
type Config struct {
	Framework         string            `yaml:"framework"`
	IncludeAsyncTests *bool             `yaml:"includeAsyncTests"`
	IncludeEdgeCases  *bool             `yaml:"includeEdgeCases"`
	Suffix            string            `yaml:"suffix"`
	Templates         map[string]string `yaml:"templates"`
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oserr.Translate("read", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply lays the file's settings over opts and returns the result.
func (c *Config) Apply(opts testgen.Options) (testgen.Options, error) {
	if c.Framework != "" {
		fw, err := testgen.ParseFramework(c.Framework)
		if err != nil {
			return opts, err
		}
		opts.Framework = fw
	}
	if c.IncludeAsyncTests != nil {
		opts.IncludeAsyncTests = *c.IncludeAsyncTests
	}
	if c.IncludeEdgeCases != nil {
		opts.IncludeEdgeCases = *c.IncludeEdgeCases
	}
	if c.Suffix != "" {
		opts.Suffix = c.Suffix
	}
	if len(c.Templates) > 0 {
		if opts.Templates == nil {
			opts.Templates = make(map[string]string, len(c.Templates))
		}
		for name, tmpl := range c.Templates {
			opts.Templates[name] = tmpl
		}
	}
	return opts, nil
}
