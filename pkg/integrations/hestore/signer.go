package hestore

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"sort"
	"strings"

	"github.com/matzehuels/partlookup/pkg/integrations"
)

const (
	// DefaultAPIHost is the base URL of the REST API.
	DefaultAPIHost = "https://api.hestore.hu/api/rest"

	// DefaultFormat is the response format suffix appended to endpoints.
	DefaultFormat = "json"
)

// Param is a single request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Order only matters for signing.
type Params []Param

// Get returns the value of key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Set replaces the value of key in place, or appends it if absent.
func (p Params) Set(key, value string) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

// Encode joins the parameters as key=value pairs separated by '&', escaping
// keys and values with esc.
func (p Params) Encode(esc func(string) string) string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(esc(kv.Key))
		b.WriteByte('=')
		b.WriteString(esc(kv.Value))
	}
	return b.String()
}

// SortedParams converts m into Params ordered by key.
func SortedParams(m map[string]string) Params {
	p := make(Params, 0, len(m)+2)
	for k, v := range m {
		p = append(p, Param{Key: k, Value: v})
	}
	sort.Slice(p, func(i, j int) bool { return p[i].Key < p[j].Key })
	return p
}

// SignedRequest is a ready-to-send POST to the API.
type SignedRequest struct {
	Method    string
	URL       string
	Body      []byte // form-encoded token, params and signature
	Signature string
}

// Signer builds signed requests for one API host.
type Signer struct {
	host      string
	format    string
	lookupEnv func(string) (string, bool)
}

// NewSigner creates a Signer for host and response format. Empty values use
// [DefaultAPIHost] and [DefaultFormat].
func NewSigner(host, format string) *Signer {
	if host == "" {
		host = DefaultAPIHost
	}
	if format == "" {
		format = DefaultFormat
	}
	return &Signer{host: host, format: format}
}

// URL returns the full URL of endpoint, e.g. "/prod/search" becomes
// "https://api.hestore.hu/api/rest/prod/search.json".
func (s *Signer) URL(endpoint string) string {
	return s.host + endpoint + "." + s.format
}

// Sign builds a signed POST for endpoint.
//
// Incomplete creds fall back to the environment. If that fails too, Sign
// returns [ErrMissingCredentials] and no request should be attempted.
//
// The signature is base64(HMAC-SHA1(secret, base)) where base is
//
//	POST&<pct(url)>&<pct(k1=v1&k2=v2...&token=T)>
//
// with parameters sorted by key and token appended last. The signature is
// appended after the token and the whole list is sent form-encoded.
func (s *Signer) Sign(endpoint string, creds Credentials, params map[string]string) (*SignedRequest, error) {
	if !creds.Valid() {
		creds = CredentialsFromEnv(s.lookupEnv)
	}
	if !creds.Valid() {
		return nil, ErrMissingCredentials
	}

	ordered := SortedParams(params).Set("token", creds.Token)
	url := s.URL(endpoint)

	signature := Signature(creds.Secret, SignatureBase(http.MethodPost, url, ordered))
	ordered = ordered.Set("signature", signature)

	return &SignedRequest{
		Method:    http.MethodPost,
		URL:       url,
		Body:      []byte(ordered.Encode(integrations.URLEncode)),
		Signature: signature,
	}, nil
}

// SignatureBase builds the string that gets signed. Both the URL and the
// encoded parameter string are escaped a second time, so every '/', ':',
// '&' and '=' appears percent-encoded.
func SignatureBase(method, url string, params Params) string {
	encoded := params.Encode(integrations.PercentEncode)
	return method + "&" + integrations.PercentEncode(url) + "&" + integrations.PercentEncode(encoded)
}

// Signature returns the base64 HMAC-SHA1 of base keyed with secret.
func Signature(secret, base string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
