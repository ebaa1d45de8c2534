package hestore

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator"

	"github.com/matzehuels/partlookup/pkg/config"
)

// Environment and settings-file keys holding the API credentials.
const (
	EnvToken  = "HESTORE_API_TOKEN"
	EnvSecret = "HESTORE_API_SECRET"
)

// ErrMissingCredentials is returned when no usable token/secret pair exists.
var ErrMissingCredentials = errors.New("hestore credentials not found")

var validate = validator.New()

// Credentials is an API token and the secret used to sign requests.
// Both fields must be set; a half-filled pair counts as absent.
type Credentials struct {
	Token  string `validate:"required"`
	Secret string `validate:"required"`
}

// Valid reports whether both token and secret are set.
func (c Credentials) Valid() bool {
	return validate.Struct(c) == nil
}

// CredentialsFromEnv reads the credentials with lookup. A nil lookup uses
// the process environment.
func CredentialsFromEnv(lookup func(string) (string, bool)) Credentials {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	token, _ := lookup(EnvToken)
	secret, _ := lookup(EnvSecret)
	return Credentials{Token: token, Secret: secret}
}

// CredentialsFromSettings takes the credentials from a loaded settings file.
func CredentialsFromSettings(s config.Settings) Credentials {
	return Credentials{Token: s.Get(EnvToken), Secret: s.Get(EnvSecret)}
}

// CheckEnvironment reports whether both credential variables are present.
func CheckEnvironment(lookup func(string) (string, bool)) bool {
	return CredentialsFromEnv(lookup).Valid()
}

// Resolver finds credentials in the environment, falling back to a settings
// file. The first successful result is kept on the Resolver and reused by
// later calls, so one Resolver should be created per entry point and shared.
type Resolver struct {
	// ConfigPath is the settings file consulted when the environment
	// lacks credentials. Empty disables the fallback.
	ConfigPath string

	// LookupEnv reads environment variables; nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// Load reads settings files; nil means config.Load.
	Load func(path string) (config.Settings, error)

	creds Credentials
}

// NewResolver creates a Resolver that falls back to the settings file at path.
func NewResolver(path string) *Resolver {
	return &Resolver{ConfigPath: path}
}

// Setup makes sure credentials are available, loading the settings file when
// the environment lacks them or force is set. It reports whether a valid
// pair is now present; failures are never returned to the caller.
func (r *Resolver) Setup(force bool) bool {
	_, err := r.Resolve(force)
	return err == nil
}

// Resolve returns the credentials, consulting the environment and then the
// settings file. With force, the settings file is reloaded even when
// credentials were already resolved. An incomplete result is reported as
// [ErrMissingCredentials].
func (r *Resolver) Resolve(force bool) (Credentials, error) {
	if r.creds.Valid() && !force {
		return r.creds, nil
	}

	creds := CredentialsFromEnv(r.LookupEnv)
	if !creds.Valid() || force {
		fromFile, err := r.loadFile()
		if err != nil {
			r.creds = Credentials{}
			return Credentials{}, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
		}
		creds = fromFile
	}

	if !creds.Valid() {
		r.creds = Credentials{}
		return Credentials{}, fmt.Errorf("%w: %s and %s must both be set", ErrMissingCredentials, EnvToken, EnvSecret)
	}
	r.creds = creds
	return creds, nil
}

func (r *Resolver) loadFile() (Credentials, error) {
	if r.ConfigPath == "" {
		return Credentials{}, errors.New("no settings file configured")
	}
	load := r.Load
	if load == nil {
		load = config.Load
	}
	settings, err := load(r.ConfigPath)
	if err != nil {
		return Credentials{}, err
	}
	return CredentialsFromSettings(settings), nil
}
