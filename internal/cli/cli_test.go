package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/partlookup/pkg/errors"
	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

const (
	searchBody = `{"status":"OK","data":[{"name":"1N4148-0603","sku":"10032.777","description":"Dióda, 0603"}]}`
	priceBody  = `{"status":"OK","data":[{"sku":"10032.777","prices":{"1":25,"100":18},"currency":"HUF"}]}`
)

// newAPI serves canned responses keyed by request path.
func newAPI(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// isolate clears every credential and option source a test could inherit.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"PARTLOOKUP_API_HOST", "PARTLOOKUP_FORMAT", "PARTLOOKUP_TIMEOUT", "PARTLOOKUP_CONFIG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv(hestore.EnvToken, "tok")
	t.Setenv(hestore.EnvSecret, "sec")
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()

	want := []string{"search", "test", "keys", "config", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "api-host", "timeout"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "keys")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	got := strings.Fields(out)
	want := hestore.DefaultSearchKeys()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestSearchCommandJSON(t *testing.T) {
	isolate(t)
	srv := newAPI(t, map[string]string{
		"/prod/search.json":     searchBody,
		"/prod/pricestock.json": priceBody,
	})

	out, err := execute(t, "search", "1N4148-0603", "--json", "--api-host", srv.URL)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if record[hestore.KeySKU] != "10032.777" {
		t.Errorf("SKU = %v", record[hestore.KeySKU])
	}
	if record[hestore.KeyProductInformationPage] != "https://www.hestore.hu/prod_10032777.html" {
		t.Errorf("page = %v", record[hestore.KeyProductInformationPage])
	}
	if record[hestore.KeyCurrency] != "HUF" {
		t.Errorf("currency = %v", record[hestore.KeyCurrency])
	}
}

func TestSearchCommandNotFound(t *testing.T) {
	isolate(t)
	srv := newAPI(t, map[string]string{"/prod/search.json": `{"status":"OK","data":[]}`})

	out, err := execute(t, "search", "NOPE", "--json", "--api-host", srv.URL)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if strings.TrimSpace(out) != "{}" {
		t.Errorf("not-found output = %q, want {}", out)
	}

	out, err = execute(t, "search", "NOPE", "--api-host", srv.URL)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "No results for NOPE") {
		t.Errorf("missing warning in %q", out)
	}
}

func TestSearchCommandText(t *testing.T) {
	isolate(t)
	srv := newAPI(t, map[string]string{
		"/prod/search.json":     searchBody,
		"/prod/pricestock.json": priceBody,
	})

	out, err := execute(t, "search", "1N4148-0603", "--api-host", srv.URL)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, want := range []string{"10032.777", "Dióda, 0603", "prod_10032777.html", "HUF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "× 25") > strings.Index(out, "× 18") {
		t.Errorf("price breaks not ordered by quantity:\n%s", out)
	}
}

func TestSearchCommandPartial(t *testing.T) {
	isolate(t)
	srv := newAPI(t, map[string]string{"/prod/search.json": searchBody})

	out, err := execute(t, "search", "1N4148-0603", "--api-host", srv.URL)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Pricing unavailable") {
		t.Errorf("missing partial warning in %q", out)
	}
}

func TestSearchCommandArgs(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "search"); err == nil {
		t.Error("search without a part number should fail")
	}
	if _, err := execute(t, "search", "  "); !apperrors.Is(err, apperrors.ErrCodeInvalidPartNumber) {
		t.Errorf("blank part number error = %v, want %s", err, apperrors.ErrCodeInvalidPartNumber)
	}
	if _, err := execute(t, "search", "X", "--api-host", "not a url"); !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("invalid host error = %v, want %s", err, apperrors.ErrCodeInvalidConfig)
	}
}

func TestFlagsOverrideInvalidEnvironment(t *testing.T) {
	isolate(t)
	srv := newAPI(t, map[string]string{
		"/prod/search.json":     searchBody,
		"/prod/pricestock.json": priceBody,
	})
	t.Setenv("PARTLOOKUP_TIMEOUT", "0")

	if _, err := execute(t, "search", "1N4148-0603", "--json", "--api-host", srv.URL); !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("zero timeout error = %v, want %s", err, apperrors.ErrCodeInvalidConfig)
	}
	if _, err := execute(t, "search", "1N4148-0603", "--json", "--api-host", srv.URL, "--timeout", "5s"); err != nil {
		t.Errorf("--timeout should replace the environment value: %v", err)
	}

	t.Setenv("PARTLOOKUP_API_HOST", "not a url")
	if _, err := execute(t, "search", "1N4148-0603", "--json", "--api-host", srv.URL, "--timeout", "5s"); err != nil {
		t.Errorf("--api-host should replace the environment value: %v", err)
	}
}

func TestTestCommand(t *testing.T) {
	isolate(t)
	srv := newAPI(t, map[string]string{
		"/prod/search.json":     strings.Replace(searchBody, "Dióda, 0603", "x", 1),
		"/prod/pricestock.json": priceBody,
	})

	out, err := execute(t, "test", "--api-host", srv.URL)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if !strings.Contains(out, "Self-test passed") {
		t.Errorf("output = %q", out)
	}

	if _, err := execute(t, "test", "--check-content", "--api-host", srv.URL); !apperrors.Is(err, apperrors.ErrCodeSelfTestFailed) {
		t.Errorf("content check error = %v, want %s", err, apperrors.ErrCodeSelfTestFailed)
	}
}

func TestConfigPathCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "config", "path", "--config", "/tmp/creds.toml")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != "/tmp/creds.toml" {
		t.Errorf("config path = %q", out)
	}
}

func TestConfigCheckCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "config", "check")
	if err != nil {
		t.Fatalf("config check: %v", err)
	}
	if !strings.Contains(out, "environment") {
		t.Errorf("output = %q", out)
	}

	os.Unsetenv(hestore.EnvToken)
	path := filepath.Join(t.TempDir(), "creds.yaml")
	if err := os.WriteFile(path, []byte("HESTORE_API_TOKEN: t\nHESTORE_API_SECRET: s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "config", "check", "--config", path)
	if err != nil {
		t.Fatalf("config check with file: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output should name %s: %q", path, out)
	}

	if _, err := execute(t, "config", "check", "--config", filepath.Join(t.TempDir(), "missing.yaml")); !apperrors.Is(err, apperrors.ErrCodeMissingCredentials) {
		t.Errorf("config check error = %v, want %s", err, apperrors.ErrCodeMissingCredentials)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "partlookup") {
		t.Error("bash completion should mention the program name")
	}
}

func TestSortQuantities(t *testing.T) {
	got := sortQuantities(map[string]any{"100": 1, "1": 1, "10": 1, "bulk": 1})
	want := "1,10,100,bulk"
	if strings.Join(got, ",") != want {
		t.Errorf("sortQuantities = %v, want %s", got, want)
	}
}
