package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charliek/sigtab/internal/constants"
	"github.com/charliek/sigtab/internal/domain"
	"github.com/charliek/sigtab/internal/render"
	"github.com/charliek/sigtab/internal/signals"
	"gopkg.in/yaml.v3"
)

// Config represents the sigtab configuration
type Config struct {
	RegisterCall string         `yaml:"register_call"`
	Handle       string         `yaml:"handle"`
	Indent       *string        `yaml:"indent,omitempty"` // nil = default indent
	Sources      []SourceConfig `yaml:"sources,omitempty"`
	Splice       SpliceConfig   `yaml:"splice"`
}

// SourceConfig is one platform symbol list
type SourceConfig struct {
	Name    string   `yaml:"name"`
	Header  string   `yaml:"header"`
	Symbols []string `yaml:"symbols"`
}

// SpliceConfig defines where the table is spliced
type SpliceConfig struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
	Marker   string `yaml:"marker"`
}

// Default returns the built-in configuration: the linux and darwin lists
// rendered as lstate_num2tbl lines.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a configuration file. Relative splice paths are
// resolved against the directory containing the file.
func Load(path string) (*Config, error) {
	// First check if file exists
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	// Check file permissions for security
	if err := CheckFilePermissions(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if cfg.Splice.Template != "" {
		cfg.Splice.Template = resolvePath(cfg.Splice.Template, dir)
	}
	if cfg.Splice.Output != "" && cfg.Splice.Output != constants.StdioPath {
		cfg.Splice.Output = resolvePath(cfg.Splice.Output, dir)
	}
	return cfg, nil
}

// Parse parses configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.RegisterCall == "" {
		cfg.RegisterCall = constants.DefaultRegisterCall
	}
	if cfg.Handle == "" {
		cfg.Handle = constants.DefaultHandle
	}
	if cfg.Indent == nil {
		indent := constants.DefaultIndent
		cfg.Indent = &indent
	}
	if len(cfg.Sources) == 0 {
		for _, src := range signals.DefaultSources() {
			cfg.Sources = append(cfg.Sources, SourceConfig{
				Name:    src.Name,
				Header:  src.Header,
				Symbols: src.Symbols,
			})
		}
	}
	if cfg.Splice.Output == "" {
		cfg.Splice.Output = constants.StdioPath
	}
	if cfg.Splice.Marker == "" {
		cfg.Splice.Marker = constants.DefaultMarker
	}
}

// ToDomainSources converts config sources to domain sources, in order
func (c *Config) ToDomainSources() []domain.Source {
	sources := make([]domain.Source, 0, len(c.Sources))
	for _, src := range c.Sources {
		sources = append(sources, domain.Source{
			Name:    src.Name,
			Header:  src.Header,
			Symbols: append([]string(nil), src.Symbols...),
		})
	}
	return sources
}

// RenderOptions returns the renderer options described by the config
func (c *Config) RenderOptions() render.Options {
	opts := render.Options{
		RegisterCall: c.RegisterCall,
		Handle:       c.Handle,
		Indent:       constants.DefaultIndent,
	}
	if c.Indent != nil {
		opts.Indent = *c.Indent
	}
	return opts
}
