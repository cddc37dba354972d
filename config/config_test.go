package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/textcore/marker"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	opts := Default()

	if err := opts.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if opts.TabWidth != 4 || opts.WrapWidth != 0 {
		t.Errorf("defaults: %+v", opts)
	}
	if opts.MinSeverity != marker.SeverityHint {
		t.Errorf("default min severity = %v", opts.MinSeverity)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeTemp(t, "editor.toml", `
wrap_width = 80
tab_width = 8
hover_debounce_ms = 500
min_severity = "warning"
`)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.WrapWidth != 80 || opts.TabWidth != 8 {
		t.Errorf("loaded: %+v", opts)
	}
	if opts.HoverDebounce != 500*time.Millisecond {
		t.Errorf("hover debounce = %v", opts.HoverDebounce)
	}
	if opts.MinSeverity != marker.SeverityWarning {
		t.Errorf("min severity = %v", opts.MinSeverity)
	}
	// Unset keys keep defaults.
	if opts.MaxCompletionResults != 50 {
		t.Errorf("max completion results = %d", opts.MaxCompletionResults)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "editor.yaml", `
wrap_width: 100
completion_debounce_ms: 250
min_severity: error
`)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.WrapWidth != 100 {
		t.Errorf("wrap width = %d", opts.WrapWidth)
	}
	if opts.CompletionDebounce != 250*time.Millisecond {
		t.Errorf("completion debounce = %v", opts.CompletionDebounce)
	}
	if opts.MinSeverity != marker.SeverityError {
		t.Errorf("min severity = %v", opts.MinSeverity)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "editor.json", `{}`)

	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeTemp(t, "broken.toml", `wrap_width = [not toml`)

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeTemp(t, "bad.toml", `tab_width = 0`)

	if _, err := Load(path); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := Default()
	bad.WrapWidth = -1
	if err := bad.Validate(); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("negative wrap width: %v", err)
	}

	bad = Default()
	bad.MaxCompletionResults = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("zero max results: %v", err)
	}
}

func TestWatcherReload(t *testing.T) {
	path := writeTemp(t, "watched.toml", `wrap_width = 40`)

	reloaded := make(chan Options, 1)
	w, err := NewWatcher(path, 20*time.Millisecond, func(o Options) {
		select {
		case reloaded <- o:
		default:
		}
	})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`wrap_width = 120`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case opts := <-reloaded:
		if opts.WrapWidth != 120 {
			t.Errorf("reloaded wrap width = %d", opts.WrapWidth)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("reload never fired")
	}
}

func TestWatcherIgnoresBrokenRewrite(t *testing.T) {
	path := writeTemp(t, "watched.toml", `wrap_width = 40`)

	reloaded := make(chan Options, 1)
	w, err := NewWatcher(path, 20*time.Millisecond, func(o Options) {
		select {
		case reloaded <- o:
		default:
		}
	})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`tab_width = 0`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case opts := <-reloaded:
		t.Errorf("invalid config was delivered: %+v", opts)
	case <-time.After(300 * time.Millisecond):
		// Reload correctly suppressed.
	}
}
