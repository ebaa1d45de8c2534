package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

// keysCommand creates the keys command listing record keys in display order.
func (c *CLI) keysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the record keys in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range hestore.DefaultSearchKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}
