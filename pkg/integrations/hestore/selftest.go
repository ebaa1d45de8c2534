package hestore

import (
	"context"
	"reflect"
	"sort"
)

// SelfTestPartNumber is the part fetched by [Client.SelfTest].
const SelfTestPartNumber = "1N4148-0603"

// selfTestRecord is what the live API returns for SelfTestPartNumber.
var selfTestRecord = map[string]any{
	KeySKU:                    "10032.777",
	KeyOriginalSymbol:         SelfTestPartNumber,
	KeySymbol:                 SelfTestPartNumber,
	KeyDescription:            "Dióda, kapcsoló, 75V, 150mA, egyetlen dióda, SMD, Tokozás: 0603",
	KeyProductInformationPage: "https://www.hestore.hu/prod_10032777.html",
}

// SelfTest fetches a known part from the live API and reports whether a
// record came back. With checkContent, every field of the expected record
// must also match; the first mismatch is logged.
//
// It needs network access and valid credentials. Credentials are set up
// first, but a failed setup only logs a warning since the environment may
// still be consulted when signing.
func (c *Client) SelfTest(ctx context.Context, checkContent bool) (bool, error) {
	return c.selfTest(ctx, SelfTestPartNumber, selfTestRecord, checkContent)
}

func (c *Client) selfTest(ctx context.Context, partNumber string, expected map[string]any, checkContent bool) (bool, error) {
	if !c.resolver.Setup(false) {
		c.logger.Warn("credentials not set up", "config", c.resolver.ConfigPath)
	}

	res, err := c.FetchPartInfo(ctx, partNumber)
	if err != nil {
		return false, err
	}
	if !res.Found() {
		c.logger.Error("no data returned", "part", partNumber)
		return false, nil
	}
	if !checkContent {
		return true, nil
	}

	got := res.Record()
	keys := make([]string, 0, len(expected))
	for k := range expected {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !reflect.DeepEqual(got[k], expected[k]) {
			c.logger.Errorf("%v != %v", got[k], expected[k])
			return false, nil
		}
	}
	return true, nil
}
