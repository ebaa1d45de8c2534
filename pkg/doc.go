// Package pkg provides the libraries behind partlookup, a command-line
// client for electronic component distributor APIs.
//
// # Overview
//
// Given a manufacturer part number, partlookup asks a distributor's catalog
// for the matching product and its price breaks and folds both answers into
// one flat record. The pkg directory is organized as:
//
//  1. [integrations] - Shared HTTP transport and error classification
//  2. [integrations/hestore] - HESTORE client: credentials, request signing,
//     part lookup and a live self-test
//  3. [config] - Key/value settings files (YAML, TOML, .env) for credentials
//  4. [observability] - Hooks for HTTP and lookup events
//  5. [errors] - Coded errors surfaced by the CLI
//  6. [buildinfo] - Version information set at link time
//
// # Architecture
//
// The data flow of a lookup:
//
//	Part number
//	     ↓
//	[integrations/hestore] Resolver (environment, then settings file)
//	     ↓
//	Signer (sorted params + token, HMAC-SHA1 signature)
//	     ↓
//	[integrations] Client (form POST, status classification)
//	     ↓
//	/prod/search → /prod/pricestock
//	     ↓
//	Result{Status, PartInfo} → record map
//
// # Quick Start
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/matzehuels/partlookup/pkg/integrations/hestore"
//	)
//
//	client := hestore.NewClient(hestore.Options{
//	    Resolver: hestore.NewResolver("hestore_api.yaml"),
//	})
//	res, err := client.FetchPartInfo(context.Background(), "1N4148-0603")
//	if err != nil {
//	    return err
//	}
//	if res.Found() {
//	    fmt.Println(res.Record())
//	}
//
// Soft failures (network errors, vendor errors, missing credentials) never
// surface as errors: they yield a NotFound or Partial result and are logged.
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/partlookup/pkg/integrations
// [integrations/hestore]: https://pkg.go.dev/github.com/matzehuels/partlookup/pkg/integrations/hestore
// [config]: https://pkg.go.dev/github.com/matzehuels/partlookup/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/partlookup/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/partlookup/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/partlookup/pkg/buildinfo
package pkg
