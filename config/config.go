// SPDX-License-Identifier: MIT
// Package: dmprdpg/config
//
// config.go — YAML schema, defaults, loading and validation.

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/dmprdpg/dmpsbm"
	"github.com/katalvlaran/dmprdpg/sbm"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Config is the root of a run description.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Sampling  SamplingConfig  `yaml:"sampling"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
}

// ModelConfig mirrors sbm.Params.
type ModelConfig struct {
	Layers       int           `yaml:"layers" validate:"gte=1"`
	Timesteps    int           `yaml:"timesteps" validate:"gte=1"`
	Groups       []int         `yaml:"groups" validate:"required,min=1,dive,gte=1"`
	DefaultBlock [][]float64   `yaml:"default_block,omitempty" validate:"omitempty,dive,min=1,dive,gte=0,lte=1"`
	Blocks       []BlockConfig `yaml:"blocks,omitempty" validate:"dive"`
}

// BlockConfig is the block matrix of one (layer, time) cell. Layer and Time
// are pointers so an omitted member is reported instead of read as 0.
type BlockConfig struct {
	Layer *int        `yaml:"layer" validate:"required,gte=0"`
	Time  *int        `yaml:"time" validate:"required,gte=0"`
	Probs [][]float64 `yaml:"probs" validate:"required,min=1,dive,min=1,dive,gte=0,lte=1"`
}

// EmbeddingConfig selects the embedding dimension.
type EmbeddingConfig struct {
	Dim int `yaml:"dim" validate:"gte=1"`
}

// SamplingConfig controls the random source. Seed 0 selects the fixed
// default seed, so runs are reproducible unless a seed is given.
type SamplingConfig struct {
	Seed      int64 `yaml:"seed"`
	Symmetric bool  `yaml:"symmetric"`
}

// ReportConfig selects the reporting outputs.
type ReportConfig struct {
	Dir       string `yaml:"dir" validate:"required"`
	Variances bool   `yaml:"variances"`
	QQ        bool   `yaml:"qq"`
	Scatter   bool   `yaml:"scatter"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Default returns a runnable configuration: two layers, two timesteps and
// two communities sharing one assortative block.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Layers:       2,
			Timesteps:    2,
			Groups:       []int{50, 50},
			DefaultBlock: [][]float64{{0.5, 0.1}, {0.1, 0.4}},
		},
		Embedding: EmbeddingConfig{Dim: dmpsbm.DefaultDim},
		Report: ReportConfig{
			Dir:       "out",
			Variances: true,
			QQ:        true,
			Scatter:   true,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates it. The
// model section has no defaults: a document must describe its own model.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Model = ModelConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags and rejects duplicate block cells.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	seen := make(map[sbm.Key]struct{}, len(c.Model.Blocks))
	for _, b := range c.Model.Blocks {
		k := sbm.Key{Layer: *b.Layer, Time: *b.Time}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicateBlock, k.Layer, k.Time)
		}
		seen[k] = struct{}{}
	}

	return nil
}

// Save writes c as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Params builds validated model parameters. Explicit blocks override
// default_block; cells covered by neither stay missing.
func (c *Config) Params() (*sbm.Params, error) {
	m := c.Model
	probs := make(sbm.ProbMap, m.Layers*m.Timesteps)
	if m.DefaultBlock != nil {
		probs = sbm.Uniform(m.Layers, m.Timesteps, m.DefaultBlock)
	}
	for _, b := range m.Blocks {
		probs[sbm.Key{Layer: *b.Layer, Time: *b.Time}] = b.Probs
	}

	return sbm.NewParams(m.Layers, m.Timesteps, m.Groups, probs)
}

// Options translates the embedding and sampling sections into pipeline
// options. The config is validated first, so an out-of-range dimension is
// reported as ErrInvalidConfig instead of reaching dmpsbm.WithDim.
func (c *Config) Options() ([]dmpsbm.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []dmpsbm.Option{
		dmpsbm.WithDim(c.Embedding.Dim),
		dmpsbm.WithSeed(c.Sampling.Seed),
	}
	if c.Sampling.Symmetric {
		opts = append(opts, dmpsbm.WithSymmetric())
	}

	return opts, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, field)
	case "min":
		return fmt.Errorf("%w: %s: must have at least %s element(s)", ErrInvalidConfig, field, e.Param())
	case "gte":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidConfig, field, e.Param())
	case "lte":
		return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalidConfig, field, e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s]", ErrInvalidConfig, field, e.Param())
	default:
		return fmt.Errorf("%w: %s: failed %q validation", ErrInvalidConfig, field, e.Tag())
	}
}
