// Package config loads partlookup's application options from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"

	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

const (
	// AppName is used for config directories and display.
	AppName = "partlookup"

	// EnvPrefix prefixes every option variable, e.g. PARTLOOKUP_API_HOST.
	EnvPrefix = "PARTLOOKUP_"

	// SettingsFile is the default credentials file name.
	SettingsFile = "hestore_api.yaml"

	defaultTimeout = 10 * time.Second
)

// Options are the application options.
type Options struct {
	APIHost string        `koanf:"api_host" validate:"required,url"`
	Format  string        `koanf:"format" validate:"required,alpha"`
	Timeout time.Duration `koanf:"timeout" validate:"required,gt=0"`
	Config  string        `koanf:"config"` // credentials settings file
}

// Load reads options from PARTLOOKUP_* variables on top of the defaults.
// Nested keys use a double underscore. The result is not validated, since
// command-line flags may still replace bad values; call Validate once they
// are applied.
func Load() (*Options, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"api_host": hestore.DefaultAPIHost,
		"format":   hestore.DefaultFormat,
		"timeout":  defaultTimeout,
		"config":   DefaultSettingsPath(),
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return nil, err
	}

	opts := &Options{}
	if err := k.Unmarshal("", opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the options after flags have been applied.
func (o *Options) Validate() error {
	return validator.New().Struct(o)
}

// ConfigDir returns the configuration directory using the XDG standard
// (~/.config/partlookup/). Falls back to the working directory when no home
// directory is known.
func ConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultSettingsPath returns the default credentials file path.
func DefaultSettingsPath() string {
	return filepath.Join(ConfigDir(), SettingsFile)
}
