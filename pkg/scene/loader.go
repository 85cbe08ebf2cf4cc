package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnsupportedFormat is returned for scene files that are neither TOML nor JSON
var ErrUnsupportedFormat = errors.New("unsupported scene format")

// Decode reads a scene configuration in the given format ("toml" or "json").
// Unknown keys are rejected so typos do not silently fall back to zero values.
func Decode(r io.Reader, format string) (Config, error) {
	var cfg Config

	switch format {
	case "toml":
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown keys in TOML scene: %v", undecoded)
		}
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return cfg, nil
}

// formatFromPath maps a file extension to a decoder format
func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadConfig reads a scene configuration file
func LoadConfig(path string) (Config, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cfg, nil
}

// LoadFile reads and builds a scene from a TOML or JSON file
func LoadFile(path string) (*Scene, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	s, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
