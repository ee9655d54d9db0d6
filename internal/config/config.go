// Package config loads and validates the patternbook site configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full site configuration.
type Config struct {
	Site      SiteConfig   `yaml:"site"`
	Content   ContentConfig `yaml:"content"`
	Output    OutputConfig `yaml:"output"`
	Build     BuildConfig  `yaml:"build"`
	Serve     ServeConfig  `yaml:"serve"`
	Redirects []Redirect   `yaml:"redirects,omitempty"`
}

// SiteConfig carries the metadata rendered into every page.
type SiteConfig struct {
	Title       string         `yaml:"title"`
	Author      string         `yaml:"author,omitempty"`
	Description string         `yaml:"description,omitempty"`
	BaseURL     string         `yaml:"base_url,omitempty"`
	Params      map[string]any `yaml:"params,omitempty"`
}

// ContentConfig points at the lecture sources.
type ContentConfig struct {
	Directory string `yaml:"directory"`
}

// OutputConfig controls where the generated site lands.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // remove the output directory before building
}

// BuildConfig controls build behavior.
type BuildConfig struct {
	Drafts         bool   `yaml:"drafts"`           // include lectures marked draft
	LastModFromGit bool   `yaml:"lastmod_from_git"` // derive lastmod from git history
	CachePath      string `yaml:"cache_path"`       // sqlite render cache, empty disables
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	Addr         string `yaml:"addr"`
	RebuildEvery string `yaml:"rebuild_every,omitempty"` // optional periodic full rebuild
	Metrics      bool   `yaml:"metrics"`                 // expose /metrics
}

// Redirect maps a retired page path to its replacement.
type Redirect struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads the configuration file, expanding ${VAR} references from the
// environment (a .env file is honored when present).
func Load(path string) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with all defaults applied and no sources
// configured. Used by tests and the serve fallback path.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = "Design Patterns"
	}
	if c.Content.Directory == "" {
		c.Content.Directory = "lectures"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./site"
		c.Output.Clean = true
	}
	if c.Build.CachePath == "" {
		c.Build.CachePath = ".patternbook/cache.db"
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8080"
	}
}

// Validate checks the configuration for inconsistencies that would only
// surface mid-build otherwise.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return fmt.Errorf("site.title must not be empty")
	}

	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("site.base_url %q is not an absolute URL", c.Site.BaseURL)
		}
	}

	for i, r := range c.Redirects {
		if !strings.HasPrefix(r.From, "/") {
			return fmt.Errorf("redirects[%d].from %q must start with /", i, r.From)
		}
		if r.To == "" {
			return fmt.Errorf("redirects[%d].to must not be empty", i)
		}
	}

	if c.Serve.RebuildEvery != "" {
		d, err := time.ParseDuration(c.Serve.RebuildEvery)
		if err != nil {
			return fmt.Errorf("serve.rebuild_every: %w", err)
		}
		if d < time.Minute {
			return fmt.Errorf("serve.rebuild_every %s is below the 1m minimum", d)
		}
	}

	return nil
}

// RebuildInterval returns the parsed serve.rebuild_every duration, or zero
// when periodic rebuilds are disabled. Call Validate first.
func (c *Config) RebuildInterval() time.Duration {
	if c.Serve.RebuildEvery == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Serve.RebuildEvery)
	if err != nil {
		return 0
	}
	return d
}
