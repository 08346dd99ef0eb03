// Package config loads linkset settings from CUE or YAML files.
//
// Both encodings are unified with the embedded #Config CUE schema, which
// supplies defaults and rejects unknown fields and invalid values.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/linkset/internal/table"
)

//go:embed schema.cue
var schemaCUE string

// ErrUnsupportedFormat is returned for config files that are neither CUE
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config file extension")

// Config holds every tunable setting.
type Config struct {
	Comment    string `json:"comment" yaml:"comment"`
	StrictRows bool   `json:"strict_rows" yaml:"strict_rows"`
	Normalize  bool   `json:"normalize" yaml:"normalize"`
	Format     string `json:"format" yaml:"format"`
	Database   string `json:"database" yaml:"database"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Comment: table.DefaultComment,
		Format:  "text",
	}
}

// TableOptions returns the loader options described by c.
func (c Config) TableOptions() table.Options {
	return table.Options{
		Comment:    c.Comment,
		StrictRows: c.StrictRows,
		Normalize:  c.Normalize,
	}
}

// Load reads and validates the config file at path.
// The encoding is chosen by extension: .cue, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	ctx := cuecontext.New()
	var value cue.Value
	switch ext := filepath.Ext(path); ext {
	case ".cue":
		value = ctx.CompileBytes(data, cue.Filename(path))
	case ".yaml", ".yml":
		var fields map[string]any
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if fields == nil {
			fields = map[string]any{}
		}
		value = ctx.Encode(fields)
	default:
		return Config{}, fmt.Errorf("config %s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return decode(ctx, value, path)
}

// decode unifies value with the schema and extracts a Config.
func decode(ctx *cue.Context, value cue.Value, path string) (Config, error) {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
