// Package hestore provides an HTTP client for the HESTORE REST API.
//
// # Overview
//
// This package fetches part metadata from HESTORE (https://www.hestore.hu),
// a Hungarian electronics distributor: description, product page, price
// breaks and currency.
//
// # Usage
//
//	client := hestore.NewClient(hestore.Options{
//	    Resolver: hestore.NewResolver("/etc/partlookup/hestore_api.yaml"),
//	})
//
//	res, err := client.FetchPartInfo(ctx, "1N4148-0603")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status, res.Record())
//
// # Credentials
//
// Every request carries an API token and is signed with the API secret. A
// [Resolver] reads HESTORE_API_TOKEN and HESTORE_API_SECRET from the
// environment and falls back to a settings file holding the same keys. The
// resolved pair is kept on the Resolver; the environment is never written.
//
// # Signing
//
// [Signer.Sign] sorts the parameters by key, appends the token and signs
//
//	POST&<pct(url)>&<pct(encoded params)>
//
// with HMAC-SHA1. The base64 signature is appended as the last parameter
// and everything is sent as a form-encoded POST body.
//
// # Results
//
// [Client.FetchPartInfo] never fails on vendor or HTTP errors. It returns a
// [Result] that is either not found, partial (search data only) or complete
// (with pricing). [Result.Record] renders the same data as the key/value
// record used by part-lookup callers, with {} for not found.
package hestore
