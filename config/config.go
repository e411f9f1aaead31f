// Package config loads schemagen settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/fwojciec/schemagen"
	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultBaseURL     = "https://www.aegissofttech.com"
	DefaultOrgName     = "Aegis Softtech"
	DefaultLogoURL     = "https://www.aegissofttech.com/insights/wp-content/uploads/2024/07/logo.webp"
	DefaultConcurrency = 10
	DefaultTimeout     = 10 * time.Second
	DefaultRateLimit   = 1.0
)

// Config holds generation settings.
type Config struct {
	BaseURL   string                         `yaml:"base_url"`
	Separator string                         `yaml:"separator"`
	Publisher schemagen.OrganizationIdentity `yaml:"publisher"`
	// Acronyms lists display forms of words that keep their spelling.
	Acronyms []string `yaml:"acronyms"`

	Concurrency int             `yaml:"concurrency"`
	Timeout     time.Duration   `yaml:"timeout"`
	RateLimit   float64         `yaml:"rate_limit"`
	RetryDelays []time.Duration `yaml:"retry_delays"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Separator: schemagen.DefaultSeparator,
		Publisher: schemagen.OrganizationIdentity{
			Name:    DefaultOrgName,
			URL:     DefaultBaseURL,
			LogoURL: DefaultLogoURL,
		},
		Acronyms:    append([]string(nil), schemagen.DefaultAcronyms...),
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultTimeout,
		RateLimit:   DefaultRateLimit,
		RetryDelays: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error when allowMissing is set.
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && allowMissing {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Publisher URL follows base_url unless set explicitly.
	cfg.Publisher.URL = ""
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, schemagen.Errorf(schemagen.EINVALID, "failed to parse config %s: %v", path, err)
	}
	if cfg.Publisher.URL == "" {
		cfg.Publisher.URL = cfg.BaseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns EINVALID for the first invalid setting.
func (c *Config) Validate() error {
	if err := validateURL("base_url", c.BaseURL, true); err != nil {
		return err
	}
	if c.Separator == "" {
		return schemagen.Errorf(schemagen.EINVALID, "separator must not be empty")
	}
	if c.Publisher.Name == "" {
		return schemagen.Errorf(schemagen.EINVALID, "publisher.name is required")
	}
	if err := validateURL("publisher.url", c.Publisher.URL, false); err != nil {
		return err
	}
	if err := validateURL("publisher.logo_url", c.Publisher.LogoURL, false); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return schemagen.Errorf(schemagen.EINVALID, "concurrency must be at least 1")
	}
	if c.Timeout <= 0 {
		return schemagen.Errorf(schemagen.EINVALID, "timeout must be positive")
	}
	if c.RateLimit < 0 {
		return schemagen.Errorf(schemagen.EINVALID, "rate_limit must be non-negative")
	}
	for i, d := range c.RetryDelays {
		if d < 0 {
			return schemagen.Errorf(schemagen.EINVALID, "retry_delays[%d] must be non-negative", i)
		}
	}
	return nil
}

// Labeler returns a labeler for the configured acronyms.
func (c *Config) Labeler() *schemagen.Labeler {
	return schemagen.NewLabeler(c.Acronyms...)
}

func validateURL(field, value string, required bool) error {
	if value == "" {
		if required {
			return schemagen.Errorf(schemagen.EINVALID, "%s is required", field)
		}
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return schemagen.Errorf(schemagen.EINVALID, "%s must be an absolute URL: %q", field, value)
	}
	return nil
}
