// Package integrations provides HTTP clients for electronics vendor APIs.
//
// # Overview
//
// This package contains the transport shared by vendor clients. Each vendor
// has its own subpackage:
//
//   - [hestore]: HESTORE part search and price/stock API
//
// # Client Pattern
//
// Vendor clients follow a consistent pattern:
//
//	client := hestore.NewClient(hestore.Options{Resolver: resolver})
//	res, err := client.FetchPartInfo(ctx, "1N4148-0603")
//
// Clients handle:
//   - Request signing and form encoding
//   - Mapping vendor responses into a normalized part record
//   - Treating HTTP failures as "no data"
//
// # Shared Infrastructure
//
// The [Client] type performs POST requests with default headers and maps
// status codes onto [ErrNotFound] and [ErrNetwork]. There is no retry and no
// response caching.
//
// # Adding a New Vendor
//
//  1. Create a subpackage: pkg/integrations/<vendor>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with a FetchPartInfo method
//  4. Use [NewClient] for HTTP
//
// [hestore]: github.com/matzehuels/partlookup/pkg/integrations/hestore
package integrations
