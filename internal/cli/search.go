package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/partlookup/pkg/errors"
	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

// searchOptions holds flags for the search command.
type searchOptions struct {
	jsonOut bool
	keys    []string
}

// searchCommand creates the search command for looking up a part number.
func (c *CLI) searchCommand() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <part-number>",
		Short: "Look up a manufacturer part number",
		Long: `Look up a manufacturer part number and print its catalog record.

The part must appear in the search results under exactly this name. Pricing
is fetched in a second call; when that call fails the record is printed
without price breaks.`,
		Example: `  partlookup search 1N4148-0603
  partlookup search 1N4148-0603 --json
  partlookup search BC817-40 --keys SKU,pricing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the record as JSON")
	cmd.Flags().StringSliceVar(&opts.keys, "keys", hestore.DefaultSearchKeys(), "record keys to print, in order")

	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, partNumber string, opts searchOptions) error {
	partNumber = strings.TrimSpace(partNumber)
	if err := apperrors.ValidatePartNumber(partNumber); err != nil {
		return err
	}

	cfg, err := c.options(cmd)
	if err != nil {
		return err
	}
	client := c.newClient(cfg)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var spinner *Spinner
	if !opts.jsonOut {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), "Searching "+partNumber+"...")
		spinner.Start()
	}
	prog := newProgress(c.Logger)
	res, err := client.FetchPartInfo(ctx, partNumber)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("search %s: %w", partNumber, err)
	}
	prog.done("Fetched " + partNumber)

	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Record())
	}

	switch res.Status {
	case hestore.StatusNotFound:
		printWarning(out, "No results for %s", partNumber)
		return nil
	case hestore.StatusPartial:
		printWarning(out, "Pricing unavailable for %s", partNumber)
	}
	printRecord(out, res.Record(), opts.keys)
	return nil
}
