/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the process configuration of clienterr tools.
//
// The file is YAML. Environment references (${VAR}) are expanded before
// parsing, and defaults are applied to whatever the file leaves out.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"dirpx.dev/clienterr/classifier"
	"dirpx.dev/clienterr/httpx"
	"dirpx.dev/clienterr/kind"
)

// BaseURLEnv names the variable consulted when api.base_url is empty.
const BaseURLEnv = "API_BASE_URL"

// Logging formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid wraps every validation failure reported by Load.
var ErrInvalid = errors.New("config: invalid")

// Config is the whole configuration document.
type Config struct {
	API        httpx.Config     `yaml:"api"`
	Logging    LoggingConfig    `yaml:"logging"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "text" (tint) or "json".
	Format  string `yaml:"format"`
	NoColor bool   `yaml:"no_color"`
}

// ClassifierConfig carries discriminant aliases, name -> taxonomy kind.
type ClassifierConfig struct {
	Aliases map[string]string `yaml:"aliases"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the YAML file at path. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = os.Getenv(BaseURLEnv)
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = httpx.DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = httpx.DefaultTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = FormatText
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("%w: api: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	if _, err := c.ClassifierOptions(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// HTTP returns a copy of the outbound-call section.
func (c *Config) HTTP() httpx.Config { return c.API }

// ClassifierOptions turns the alias table into classifier options, in
// name order so that errors are reported deterministically.
func (c *Config) ClassifierOptions() ([]classifier.Option, error) {
	names := make([]string, 0, len(c.Classifier.Aliases))
	for name := range c.Classifier.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := make([]classifier.Option, 0, len(names))
	for _, name := range names {
		k, err := kind.Parse(c.Classifier.Aliases[name])
		if err != nil {
			return nil, fmt.Errorf("classifier.aliases[%s]: %w", name, err)
		}
		opts = append(opts, classifier.WithAlias(name, k))
	}
	return opts, nil
}
