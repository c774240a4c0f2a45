/**
 * Copyright (c) 2026, The Nexus Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package config loads the nexus.yml project file used by the nexus command line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wanxger/nexus"
	"github.com/wanxger/nexus/lint"
)

// DefaultFileName is the config file the CLI looks for when none is given.
const DefaultFileName = "nexus.yml"

// Config is the parsed nexus.yml.
type Config struct {
	// Schema lists glob patterns of SDL files the tool operates on.
	Schema []string `yaml:"schema"`

	// NonNullDefaults overrides the schema-wide nullability policy. Each mode left nil keeps the
	// stock behavior (outputs non-null, inputs nullable).
	NonNullDefaults NonNullDefaultsConfig `yaml:"nonNullDefaults"`

	// Lint configures the lint rules.
	Lint LintConfig `yaml:"lint"`
}

// NonNullDefaultsConfig mirrors nexus.NonNullDefaults with optional fields.
type NonNullDefaultsConfig struct {
	Output *bool `yaml:"output"`
	Input  *bool `yaml:"input"`
}

// LintConfig selects lint rules in nexus.yml.
type LintConfig struct {
	RequireDescriptions    bool `yaml:"requireDescriptions"`
	AllowNonNullRootFields bool `yaml:"allowNonNullRootFields"`
}

// Default returns the config used when no nexus.yml exists: all SDL files under the working
// directory, stock nullability, default lint rules.
func Default() *Config {
	return &Config{
		Schema: []string{"*.graphql", "*.graphqls"},
	}
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(config.Schema) == 0 {
		return nil, fmt.Errorf("%s: schema must list at least one glob pattern", path)
	}
	for _, pattern := range config.Schema {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("%s: bad schema glob %q: %w", path, pattern, err)
		}
	}

	return config, nil
}

// SchemaFiles expands the schema globs relative to dir, deduplicated, in sorted order.
func (c *Config) SchemaFiles(dir string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range c.Schema {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad schema glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	return files, nil
}

// NexusNonNullDefaults converts the optional overrides to a nexus.NonNullDefaults.
func (c *Config) NexusNonNullDefaults() nexus.NonNullDefaults {
	defaults := nexus.DefaultNonNullDefaults()
	if c.NonNullDefaults.Output != nil {
		defaults.Output = *c.NonNullDefaults.Output
	}
	if c.NonNullDefaults.Input != nil {
		defaults.Input = *c.NonNullDefaults.Input
	}
	return defaults
}

// LintOptions converts the lint section to lint.Options. When nexus.yml overrides the
// nullability policy, the resolved policy is handed to the nullability-policy lint rule.
func (c *Config) LintOptions() lint.Options {
	opts := lint.Options{
		RequireDescriptions:    c.Lint.RequireDescriptions,
		AllowNonNullRootFields: c.Lint.AllowNonNullRootFields,
	}
	if c.NonNullDefaults.Output != nil || c.NonNullDefaults.Input != nil {
		defaults := c.NexusNonNullDefaults()
		opts.NonNullDefaults = &defaults
	}
	return opts
}
