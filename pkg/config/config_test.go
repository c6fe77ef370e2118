package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/willbeason/mandelbrot/pkg/plane"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Width != 740 || cfg.Height != 605 {
		t.Errorf("expected 740x605, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxIterations != 50 {
		t.Errorf("expected 50 iterations, got %d", cfg.MaxIterations)
	}
	if cfg.Viewport != plane.Reference {
		t.Errorf("expected reference viewport, got %v", cfg.Viewport)
	}
	if w, h := cfg.WindowSize(); w != 790 || h != 655 {
		t.Errorf("expected 790x655 window, got %dx%d", w, h)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero iterations", func(c *Config) { c.MaxIterations = 0 }},
		{"inverted viewport", func(c *Config) { c.Viewport.ReMin, c.Viewport.ReMax = 1, -2 }},
		{"negative border", func(c *Config) { c.Border.X = -1 }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.modify(&cfg)
		if err := cfg.Validate(); !errors.Is(err, plane.ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", tt.name, err)
		}
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
width = 320
max_iterations = 200

[viewport]
re_min = -0.8
re_max = -0.7
im_min = 0.05
im_max = 0.15
`)

	cfg, err := Parse("seahorse.toml", data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Width != 320 || cfg.MaxIterations != 200 {
		t.Errorf("unexpected width %d, iterations %d", cfg.Width, cfg.MaxIterations)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("expected default height, got %d", cfg.Height)
	}
	if cfg.Border.X != DefaultBorder || cfg.Border.Y != DefaultBorder {
		t.Errorf("expected default border, got %+v", cfg.Border)
	}
	want := plane.Viewport{ReMin: -0.8, ReMax: -0.7, ImMin: 0.05, ImMax: 0.15}
	if cfg.Viewport != want {
		t.Errorf("expected viewport %v, got %v", want, cfg.Viewport)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
height: 100
border:
  x: 0
  y: 10
viewport:
  im_min: -1
  im_max: 1
`)

	for _, name := range []string{"a.yaml", "a.yml", "A.YAML"} {
		cfg, err := Parse(name, data)
		if err != nil {
			t.Fatalf("Parse(%s): %v", name, err)
		}

		if cfg.Height != 100 || cfg.Width != DefaultWidth {
			t.Errorf("%s: unexpected size %dx%d", name, cfg.Width, cfg.Height)
		}
		if cfg.Border != (Border{X: 0, Y: 10}) {
			t.Errorf("%s: unexpected border %+v", name, cfg.Border)
		}
		if cfg.Viewport.ReMin != -2 || cfg.Viewport.ImMin != -1 || cfg.Viewport.ImMax != 1 {
			t.Errorf("%s: unexpected viewport %v", name, cfg.Viewport)
		}
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("bad.toml", []byte("width = = 3"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError for bad TOML, got %v", err)
	} else if parseErr.Path != "bad.toml" {
		t.Errorf("expected path bad.toml, got %s", parseErr.Path)
	}

	_, err = Parse("bad.yaml", []byte("width: [1"))
	if !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError for bad YAML, got %v", err)
	}

	_, err = Parse("settings.json", []byte("{}"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.toml")
	err := os.WriteFile(path, []byte("width = 320\nheight = 200\nmax_iterations = 80\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := Bind(fs)
	err = fs.Parse([]string{"--config", path, "--height", "150", "--re-min", "-1.5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// From the file.
	if cfg.Width != 320 || cfg.MaxIterations != 80 {
		t.Errorf("expected file values, got width %d, iterations %d", cfg.Width, cfg.MaxIterations)
	}
	// From flags.
	if cfg.Height != 150 || cfg.Viewport.ReMin != -1.5 {
		t.Errorf("expected flag values, got height %d, re-min %v", cfg.Height, cfg.Viewport.ReMin)
	}
	// Untouched.
	if cfg.Viewport.ReMax != 1 || cfg.Border.Y != DefaultBorder {
		t.Errorf("expected defaults, got re-max %v, border %+v", cfg.Viewport.ReMax, cfg.Border)
	}
}

func TestFlagsWithoutFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestFlagsRejectInvalid(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := Bind(fs)
	if err := fs.Parse([]string{"--im-min", "2"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if _, err := f.Resolve(); !errors.Is(err, plane.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
