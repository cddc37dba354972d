// Package config loads and watches editor options.
//
// Options come from TOML or YAML files, chosen by extension. Unset
// keys keep their defaults, so a config file only needs the values it
// changes. The Watcher reloads a file when it changes on disk, with a
// debounce so editors that write in several steps trigger one reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/textcore/marker"
)

// Errors returned by config loading.
var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidOption     = errors.New("invalid option value")
)

// Options are the tunable editor settings.
type Options struct {
	// WrapWidth is the soft-wrap width in cells. Zero disables
	// wrapping.
	WrapWidth int

	// TabWidth is the cell width of a tab.
	TabWidth int

	// HoverDebounce is how long the pointer must rest before a hover
	// query fires.
	HoverDebounce time.Duration

	// CompletionDebounce delays completion queries while typing.
	CompletionDebounce time.Duration

	// MaxCompletionResults caps the completion list.
	MaxCompletionResults int

	// MinSeverity hides markers less severe than this.
	MinSeverity marker.Severity
}

// Default returns the built-in option values.
func Default() Options {
	return Options{
		WrapWidth:            0,
		TabWidth:             4,
		HoverDebounce:        300 * time.Millisecond,
		CompletionDebounce:   150 * time.Millisecond,
		MaxCompletionResults: 50,
		MinSeverity:          marker.SeverityHint,
	}
}

// Validate reports the first invalid option value.
func (o Options) Validate() error {
	if o.WrapWidth < 0 {
		return fmt.Errorf("%w: wrap_width %d", ErrInvalidOption, o.WrapWidth)
	}
	if o.TabWidth < 1 || o.TabWidth > 16 {
		return fmt.Errorf("%w: tab_width %d", ErrInvalidOption, o.TabWidth)
	}
	if o.HoverDebounce < 0 || o.CompletionDebounce < 0 {
		return fmt.Errorf("%w: negative debounce", ErrInvalidOption)
	}
	if o.MaxCompletionResults < 1 {
		return fmt.Errorf("%w: max_completion_results %d", ErrInvalidOption, o.MaxCompletionResults)
	}
	if o.MinSeverity < marker.SeverityError || o.MinSeverity > marker.SeverityHint {
		return fmt.Errorf("%w: min_severity %d", ErrInvalidOption, o.MinSeverity)
	}
	return nil
}

// fileOptions is the on-disk schema. Pointer fields distinguish unset
// keys from explicit zeroes; durations are in milliseconds.
type fileOptions struct {
	WrapWidth            *int    `toml:"wrap_width" yaml:"wrap_width"`
	TabWidth             *int    `toml:"tab_width" yaml:"tab_width"`
	HoverDebounceMs      *int    `toml:"hover_debounce_ms" yaml:"hover_debounce_ms"`
	CompletionDebounceMs *int    `toml:"completion_debounce_ms" yaml:"completion_debounce_ms"`
	MaxCompletionResults *int    `toml:"max_completion_results" yaml:"max_completion_results"`
	MinSeverity          *string `toml:"min_severity" yaml:"min_severity"`
}

// Load reads options from a TOML or YAML file, applying them over the
// defaults.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	var fo fileOptions
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fo); err != nil {
			return Options{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fo); err != nil {
			return Options{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return Options{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	opts := Default()
	if fo.WrapWidth != nil {
		opts.WrapWidth = *fo.WrapWidth
	}
	if fo.TabWidth != nil {
		opts.TabWidth = *fo.TabWidth
	}
	if fo.HoverDebounceMs != nil {
		opts.HoverDebounce = time.Duration(*fo.HoverDebounceMs) * time.Millisecond
	}
	if fo.CompletionDebounceMs != nil {
		opts.CompletionDebounce = time.Duration(*fo.CompletionDebounceMs) * time.Millisecond
	}
	if fo.MaxCompletionResults != nil {
		opts.MaxCompletionResults = *fo.MaxCompletionResults
	}
	if fo.MinSeverity != nil {
		opts.MinSeverity = marker.SeverityFromString(*fo.MinSeverity)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
