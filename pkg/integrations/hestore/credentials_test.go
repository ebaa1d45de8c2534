package hestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/partlookup/pkg/config"
)

func TestCredentials_Valid(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  bool
	}{
		{"both", Credentials{Token: "t", Secret: "s"}, true},
		{"token only", Credentials{Token: "t"}, false},
		{"secret only", Credentials{Secret: "s"}, false},
		{"empty", Credentials{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckEnvironment(t *testing.T) {
	if CheckEnvironment(fakeEnv(nil)) {
		t.Error("CheckEnvironment() = true for empty environment")
	}
	if CheckEnvironment(fakeEnv(map[string]string{EnvToken: "t", EnvSecret: ""})) {
		t.Error("CheckEnvironment() = true with empty secret")
	}
	if !CheckEnvironment(fakeEnv(map[string]string{EnvToken: "t", EnvSecret: "s"})) {
		t.Error("CheckEnvironment() = false with both variables set")
	}
}

func TestCheckEnvironment_Process(t *testing.T) {
	t.Setenv(EnvToken, "t")
	t.Setenv(EnvSecret, "s")
	if !CheckEnvironment(nil) {
		t.Error("CheckEnvironment(nil) should read the process environment")
	}
}

func TestCredentialsFromSettings(t *testing.T) {
	creds := CredentialsFromSettings(config.Settings{EnvToken: "t", EnvSecret: "s", "other": "x"})
	if creds != (Credentials{Token: "t", Secret: "s"}) {
		t.Errorf("CredentialsFromSettings() = %+v", creds)
	}
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hestore_api.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolver_EnvironmentFirst(t *testing.T) {
	loads := 0
	r := &Resolver{
		ConfigPath: "unused.yaml",
		LookupEnv:  fakeEnv(map[string]string{EnvToken: "env-t", EnvSecret: "env-s"}),
		Load: func(string) (config.Settings, error) {
			loads++
			return nil, errors.New("should not load")
		},
	}

	creds, err := r.Resolve(false)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if creds.Token != "env-t" || creds.Secret != "env-s" {
		t.Errorf("Resolve() = %+v", creds)
	}
	if loads != 0 {
		t.Errorf("settings loaded %d times, want 0", loads)
	}
}

func TestResolver_FileFallback(t *testing.T) {
	r := &Resolver{
		ConfigPath: writeSettings(t, "HESTORE_API_TOKEN: file-t\nHESTORE_API_SECRET: file-s\n"),
		LookupEnv:  fakeEnv(nil),
	}

	if !r.Setup(false) {
		t.Fatal("Setup() = false, want true")
	}
	creds, _ := r.Resolve(false)
	if creds.Token != "file-t" || creds.Secret != "file-s" {
		t.Errorf("Resolve() = %+v", creds)
	}
}

func TestResolver_CachesResult(t *testing.T) {
	loads := 0
	r := &Resolver{
		ConfigPath: "settings.yaml",
		LookupEnv:  fakeEnv(nil),
		Load: func(string) (config.Settings, error) {
			loads++
			return config.Settings{EnvToken: "t", EnvSecret: "s"}, nil
		},
	}

	for i := 0; i < 3; i++ {
		if _, err := r.Resolve(false); err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
	}
	if loads != 1 {
		t.Errorf("settings loaded %d times, want 1", loads)
	}

	if _, err := r.Resolve(true); err != nil {
		t.Fatalf("Resolve(force) error: %v", err)
	}
	if loads != 2 {
		t.Errorf("forced resolve should reload, loads = %d", loads)
	}
}

func TestResolver_ForceOverridesEnvironment(t *testing.T) {
	r := &Resolver{
		ConfigPath: writeSettings(t, "HESTORE_API_TOKEN: file-t\nHESTORE_API_SECRET: file-s\n"),
		LookupEnv:  fakeEnv(map[string]string{EnvToken: "env-t", EnvSecret: "env-s"}),
	}

	creds, err := r.Resolve(true)
	if err != nil {
		t.Fatalf("Resolve(true) error: %v", err)
	}
	if creds.Token != "file-t" {
		t.Errorf("forced Resolve() token = %s, want file-t", creds.Token)
	}
}

func TestResolver_SilentFailures(t *testing.T) {
	tests := []struct {
		name string
		r    *Resolver
	}{
		{"no config path", &Resolver{LookupEnv: fakeEnv(nil)}},
		{"missing file", &Resolver{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"), LookupEnv: fakeEnv(nil)}},
		{"fields absent", &Resolver{ConfigPath: writeSettings(t, "OTHER: x\n"), LookupEnv: fakeEnv(nil)}},
		{"secret absent", &Resolver{ConfigPath: writeSettings(t, "HESTORE_API_TOKEN: t\n"), LookupEnv: fakeEnv(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Setup(false) {
				t.Error("Setup() = true, want false")
			}
			if _, err := tt.r.Resolve(false); !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("Resolve() error = %v, want ErrMissingCredentials", err)
			}
		})
	}
}
