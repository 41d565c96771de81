// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for asteroidgen.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/procgen/asteroid"
	"cogentcore.org/procgen/base/iox/tomlx"
	"cogentcore.org/procgen/base/iox/yamlx"
)

// Config is the configuration information for asteroidgen.
type Config struct {

	// Asteroid are the parameters of each generated asteroid.
	// With a seed, asteroid i uses the seed plus i; without one,
	// every asteroid gets a random seed.
	Asteroid asteroid.Params `toml:"asteroid" yaml:"asteroid"`

	// Out is the directory the OBJ files are written to.
	Out string `toml:"out" yaml:"out"`

	// Count is the number of asteroids to generate.
	Count int `toml:"count" yaml:"count"`

	// Jobs is the maximum number of asteroids generated at the same
	// time; values <= 0 use one per CPU.
	Jobs int `toml:"jobs" yaml:"jobs"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Asteroid: asteroid.DefaultParams(),
		Out:      ".",
		Count:    1,
	}
}

// Validate returns an error describing the first invalid field, if any.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	return c.Asteroid.Validate()
}

// format is a supported config file format.
type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(filename string) (format, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("config file %q: unsupported extension %q, use .toml, .yaml or .yml", filename, ext)
	}
}

// Open reads the given TOML or YAML file into c, selected by its
// extension. Fields missing from the file keep their values.
func (c *Config) Open(filename string) error {
	f, err := formatOf(filename)
	if err != nil {
		return err
	}
	if f == formatYAML {
		return yamlx.Open(c, filename)
	}
	return tomlx.Open(c, filename)
}

// Save writes c to the given TOML or YAML file, selected by its extension.
func (c *Config) Save(filename string) error {
	f, err := formatOf(filename)
	if err != nil {
		return err
	}
	if f == formatYAML {
		return yamlx.Save(c, filename)
	}
	return tomlx.Save(c, filename)
}
