package cli

import (
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/partlookup/pkg/errors"
	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

// testCommand creates the test command that runs the live self-test.
func (c *CLI) testCommand() *cobra.Command {
	var checkContent bool

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check connectivity and credentials against the live API",
		Long: `Fetch ` + hestore.SelfTestPartNumber + ` from the live API and report whether a record came back.

With --check-content every field of the known record must also match. This
needs network access and valid credentials.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.options(cmd)
			if err != nil {
				return err
			}
			client := c.newClient(cfg)

			spinner := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Running self-test...")
			spinner.Start()
			ok, err := client.SelfTest(cmd.Context(), checkContent)
			if err != nil {
				msg := "Self-test aborted"
				if spinner.Cancelled() {
					msg = "Self-test cancelled"
				}
				spinner.StopWithError(msg)
				return err
			}
			if !ok {
				spinner.StopWithError("Self-test failed")
				return apperrors.New(apperrors.ErrCodeSelfTestFailed, "self-test failed for %s", hestore.SelfTestPartNumber)
			}
			spinner.Stop()
			printSuccess(cmd.OutOrStdout(), "Self-test passed (%s)", hestore.SelfTestPartNumber)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkContent, "check-content", false, "compare every field with the known record")

	return cmd
}
