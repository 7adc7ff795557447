package zid

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/zid/tracing"
	"gopkg.in/yaml.v3"
)

// DefaultBits is the length Generator.New uses unless configured otherwise.
const DefaultBits = 128

// Config is a serialisable representation of a Generator. It can be populated
// from YAML or JSON. The zero-value policy is unconstrained.
type Config struct {
	DefaultBits int           `json:"defaultBits" yaml:"defaultBits"`
	Policy      Policy        `json:"policy" yaml:"policy"`
	Tracing     TracingConfig `json:"tracing" yaml:"tracing"`
}

// TracingConfig enables OpenTelemetry spans for generators built by NewFromConfig.
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config for 128-bit identifiers with no length
// policy and tracing disabled. Callers may modify the returned struct before
// passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		DefaultBits: DefaultBits,
		Tracing:     TracingConfig{ServiceName: "zid"},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if err := checkBits(c.DefaultBits); err != nil {
		errs = append(errs, fmt.Errorf("defaultBits: %w", err))
	}
	if err := c.Policy.Verify(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 && !c.Policy.AllowsBits(c.DefaultBits) {
		errs = append(errs, invalidArgument("defaultBits %d not allowed by policy %v", c.DefaultBits, c.Policy.Bits))
	}
	return errors.Join(errs...)
}

// DecodeConfig decodes YAML (or JSON) data on top of DefaultConfig and
// validates the result.
func DecodeConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig downloads and decodes a config from any afs supported URL
// (local path, file://, mem://, s3://, gs://, ...).
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config from %s: %w", URL, err)
	}
	return DecodeConfig(data)
}

// NewFromConfig builds a Generator from cfg. Options are applied after the
// config, so they take precedence.
func NewFromConfig(cfg *Config, options ...Option) (*Generator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var opts []Option
	opts = append(opts, WithDefaultBits(cfg.DefaultBits))
	if len(cfg.Policy.Bits) > 0 {
		opts = append(opts, WithPolicy(NewPolicy(cfg.Policy.Bits...)))
	}
	if cfg.Tracing.Enabled {
		name := cfg.Tracing.ServiceName
		if name == "" {
			name = "zid"
		}
		if err := tracing.Init(name, cfg.Tracing.ServiceVersion, cfg.Tracing.OutputFile); err != nil {
			return nil, fmt.Errorf("failed to init tracing: %w", err)
		}
		opts = append(opts, withSpans())
	}
	opts = append(opts, options...)
	return NewGenerator(opts...), nil
}
