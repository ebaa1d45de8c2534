// Package config loads flat key/value settings files.
//
// A settings file holds vendor credentials and similar options, e.g.:
//
//	HESTORE_API_TOKEN: abc
//	HESTORE_API_SECRET: s3cret
//
// The format is chosen by file extension:
//
//   - .yaml, .yml: YAML mapping
//   - .toml: TOML table
//   - .env or no extension: KEY=VALUE lines
//
// Nested mappings are flattened with "." so that a TOML table
// [hestore] token = "x" becomes the key "hestore.token".
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by [Load] for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported settings format")

// Settings is a flat view of a settings file.
type Settings map[string]string

// Get returns the value for key, or "" if absent.
func (s Settings) Get(key string) string {
	return s[key]
}

// Load reads the settings file at path.
// A missing file yields an error wrapping fs.ErrNotExist.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	settings, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, nil
}

// Parse decodes data according to ext (".yaml", ".toml", ".env", ...).
func Parse(ext string, data []byte) (Settings, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return flatten(raw), nil
	case ".toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return flatten(raw), nil
	case ".env", "":
		env, err := godotenv.UnmarshalBytes(data)
		if err != nil {
			return nil, err
		}
		return Settings(env), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func flatten(raw map[string]any) Settings {
	out := make(Settings, len(raw))
	flattenInto(out, "", raw)
	return out
}

func flattenInto(out Settings, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flattenInto(out, key, val)
		case nil:
			// YAML "KEY:" with no value counts as unset.
		default:
			out[key] = stringify(val)
		}
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
