package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/partlookup/pkg/observability"
)

// logHooks reports vendor traffic on the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, statusCode int, d time.Duration) {
	h.logger.Debug("response", "path", path, "status", statusCode, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "path", path, "err", err)
}

func (h logHooks) OnLookupStart(_ context.Context, vendor, partNumber string) {
	h.logger.Debug("lookup", "vendor", vendor, "part", partNumber)
}

func (h logHooks) OnLookupComplete(_ context.Context, vendor, partNumber, status string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("lookup failed", "vendor", vendor, "part", partNumber, "err", err)
		return
	}
	h.logger.Debug("lookup done", "vendor", vendor, "part", partNumber, "status", status, "took", d.Round(time.Millisecond))
}

// RegisterHooks routes HTTP and lookup events to the CLI logger.
func (c *CLI) RegisterHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetHTTPHooks(h)
	observability.SetLookupHooks(h)
}
