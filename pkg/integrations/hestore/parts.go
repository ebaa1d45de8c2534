package hestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/partlookup/pkg/observability"
)

// vendor names this client in observability events.
const vendor = "hestore"

// DefaultCurrency is assumed when the price lookup has no entry for the SKU.
const DefaultCurrency = "HUF"

// ProductPageBase is the shop URL prefix of product pages.
const ProductPageBase = "https://www.hestore.hu/prod_"

// Record keys produced by [PartInfo.Record].
const (
	KeySKU                    = "SKU"
	KeyOriginalSymbol         = "OriginalSymbol"
	KeySymbol                 = "Symbol"
	KeyDescription            = "Description"
	KeyProductInformationPage = "ProductInformationPage"
	KeyPricing                = "pricing"
	KeyCurrency               = "currency"
	KeyDatasheet              = "Datasheet"
	KeyPhoto                  = "Photo"
)

// DefaultSearchKeys returns the record fields a part search fills, in the
// caller's column order. Empty strings are placeholders for columns this
// vendor does not provide (revision and an unused slot).
func DefaultSearchKeys() []string {
	return []string{
		KeySymbol,
		KeyDescription,
		"", // Revision
		"Category",
		KeySKU,
		"",
		KeyOriginalSymbol,
		KeyProductInformationPage,
		KeyDatasheet,
		KeyPhoto,
	}
}

// Product is an entry of the /prod/search response.
type Product struct {
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
}

// PriceStock is an entry of the /prod/pricestock response.
type PriceStock struct {
	SKU      string     `json:"sku"`
	Prices   PriceTable `json:"prices"`
	Currency string     `json:"currency"`
}

// PriceTable maps a quantity to its unit price.
//
// The API encodes an empty table as [] and may send a list instead of an
// object; list entries are keyed by their index.
type PriceTable map[string]any

func (t *PriceTable) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = nil
		return nil
	case len(data) > 0 && data[0] == '[':
		var list []any
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		table := make(PriceTable, len(list))
		for i, v := range list {
			table[strconv.Itoa(i)] = v
		}
		*t = table
		return nil
	case len(data) > 0 && data[0] == '{':
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*t = m
		return nil
	}
	return fmt.Errorf("prices: expected object or array, got %s", data)
}

// PartInfo is the normalized part data. Empty fields were not provided.
//
// Datasheet and Photo are never filled: the API's document lookup is not
// queried.
type PartInfo struct {
	SKU                    string
	OriginalSymbol         string
	Symbol                 string
	Description            string
	ProductInformationPage string
	Pricing                map[string]any // nil when no price entry was found
	Currency               string
	Datasheet              string
	Photo                  string
}

// Record renders p as a key/value record. The search fields are always
// present, even when empty. Currency is present once the price step set it,
// pricing only when an entry matched, and Datasheet and Photo only when set.
func (p *PartInfo) Record() map[string]any {
	rec := map[string]any{}
	if p == nil {
		return rec
	}
	rec[KeySKU] = p.SKU
	rec[KeyOriginalSymbol] = p.OriginalSymbol
	rec[KeySymbol] = p.Symbol
	rec[KeyDescription] = p.Description
	rec[KeyProductInformationPage] = p.ProductInformationPage
	if p.Pricing != nil {
		rec[KeyPricing] = maps.Clone(p.Pricing)
	}
	if p.Pricing != nil || p.Currency != "" {
		rec[KeyCurrency] = p.Currency
	}
	if p.Datasheet != "" {
		rec[KeyDatasheet] = p.Datasheet
	}
	if p.Photo != "" {
		rec[KeyPhoto] = p.Photo
	}
	return rec
}

// Status classifies a [Result].
type Status int

const (
	// StatusNotFound means the search did not return the part.
	StatusNotFound Status = iota
	// StatusPartial means search data is present but pricing is not.
	StatusPartial
	// StatusComplete means both search and pricing data are present.
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusPartial:
		return "partial"
	case StatusComplete:
		return "complete"
	default:
		return "not found"
	}
}

// Result is the outcome of [Client.FetchPartInfo]. Part is nil iff Status
// is StatusNotFound.
type Result struct {
	Status Status
	Part   *PartInfo
}

// Found reports whether the part was found at all.
func (r *Result) Found() bool { return r != nil && r.Status != StatusNotFound }

// Record renders the result as a key/value record; not found is {}.
func (r *Result) Record() map[string]any {
	if !r.Found() {
		return map[string]any{}
	}
	return r.Part.Record()
}

// BareSKU strips the dots from a SKU ("10032.777" -> "10032777").
func BareSKU(sku string) string {
	return strings.ReplaceAll(sku, ".", "")
}

// ProductPageURL returns the shop page of a bare SKU.
func ProductPageURL(bareSKU string) string {
	return ProductPageBase + bareSKU + ".html"
}

// FetchPartInfo looks up partNumber and returns its normalized data.
//
// Credentials come from the client's [Resolver], which reads the
// environment first and its settings file only when the environment lacks
// a complete pair. Settings-file credentials take precedence only after a
// forced [Resolver.Setup].
//
// The search result must contain a product named exactly partNumber; the
// first such product wins. Prices are then requested with the bare SKU but
// matched against the full SKU, as the API reports the dotted form. When the
// price call fails the result is StatusPartial with no currency; when it
// succeeds without an entry for the SKU the currency defaults to
// [DefaultCurrency]. An undecodable price response also yields StatusPartial.
//
// HTTP failures, vendor errors and missing credentials never produce an
// error; err is only set for an undecodable search response or a cancelled
// ctx.
func (c *Client) FetchPartInfo(ctx context.Context, partNumber string) (*Result, error) {
	hooks := observability.Lookup()
	hooks.OnLookupStart(ctx, vendor, partNumber)
	start := time.Now()

	res, err := c.fetchPartInfo(ctx, partNumber)
	status := StatusNotFound
	if res != nil {
		status = res.Status
	}
	hooks.OnLookupComplete(ctx, vendor, partNumber, status.String(), time.Since(start), err)
	return res, err
}

func (c *Client) fetchPartInfo(ctx context.Context, partNumber string) (*Result, error) {
	creds, err := c.resolver.Resolve(false)
	if err != nil {
		c.logger.Debug("credentials unresolved, using environment", "err", err)
	}

	products, ok, err := query[Product](ctx, c, searchEndpoint, creds, map[string]string{"query": partNumber})
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Result{Status: StatusNotFound}, nil
	}

	i := slices.IndexFunc(products, func(p Product) bool { return p.Name == partNumber })
	if i < 0 {
		c.logger.Debug("part not in search results", "part", partNumber, "results", len(products))
		return &Result{Status: StatusNotFound}, nil
	}

	product := products[i]
	bare := BareSKU(product.SKU)
	part := &PartInfo{
		SKU:                    product.SKU,
		OriginalSymbol:         partNumber,
		Symbol:                 product.Name,
		Description:            product.Description,
		ProductInformationPage: ProductPageURL(bare),
	}

	stock, ok, err := query[PriceStock](ctx, c, priceStockEndpoint, creds, map[string]string{"skus[0]": bare})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		c.logger.Warn("price response not decodable", "part", partNumber, "err", err)
		return &Result{Status: StatusPartial, Part: part}, nil
	}
	if !ok {
		return &Result{Status: StatusPartial, Part: part}, nil
	}

	j := slices.IndexFunc(stock, func(s PriceStock) bool { return s.SKU == product.SKU })
	if j < 0 {
		part.Currency = DefaultCurrency
		return &Result{Status: StatusPartial, Part: part}, nil
	}

	part.Pricing = maps.Clone(stock[j].Prices)
	if part.Pricing == nil {
		part.Pricing = map[string]any{}
	}
	part.Currency = stock[j].Currency
	return &Result{Status: StatusComplete, Part: part}, nil
}
