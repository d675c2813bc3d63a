// Package config loads the optional .robotslint.yml lint configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eykd/robotslint-go/internal/domain"
	"github.com/eykd/robotslint-go/internal/lint"
)

// DefaultFilename is the config file looked up when none is given.
const DefaultFilename = ".robotslint.yml"

// Config controls how lint results are filtered and presented. The
// zero value leaves validator output untouched.
type Config struct {
	// Ignore lists finding types to drop from reports.
	Ignore []domain.FindingType `yaml:"ignore"`
	// WarningsAsErrors promotes surviving warnings to errors for
	// exit-code purposes.
	WarningsAsErrors bool `yaml:"warnings-as-errors"`
	// JSON makes machine output the default format.
	JSON bool `yaml:"json"`
}

// Options converts the config into lint service options.
func (c Config) Options() lint.Options {
	return lint.Options{Ignore: c.Ignore, WarningsAsErrors: c.WarningsAsErrors}
}

// Ignored reports whether findings of type t should be dropped.
func (c Config) Ignored(t domain.FindingType) bool {
	for _, ig := range c.Ignore {
		if ig == t {
			return true
		}
	}
	return false
}

// Load reads a config file. A missing file is not an error and yields
// the zero config; unknown keys and unknown finding types are errors so
// that typos in the config do not silently disable rules.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty config file.
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	for _, t := range cfg.Ignore {
		if !domain.KnownFindingType(t) {
			return Config{}, fmt.Errorf("config %s: unknown finding type %q in ignore list", path, t)
		}
	}
	return cfg, nil
}
