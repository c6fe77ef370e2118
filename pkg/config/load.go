package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a TOML or YAML file, chosen by extension, on top of Default.
// Settings missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes data as the format implied by the extension of path.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err := toml.Unmarshal(data, &cfg)
		if err != nil {
			return Config{}, &ParseError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		err := yaml.Unmarshal(data, &cfg)
		if err != nil {
			return Config{}, &ParseError{Path: path, Err: err}
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return cfg, nil
}
