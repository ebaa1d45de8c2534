package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/partlookup/pkg/errors"
	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

// configCommand creates the config command with its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect credential configuration",
		Long: `Inspect where credentials come from.

Credentials are read from ` + hestore.EnvToken + ` and ` + hestore.EnvSecret + `
first. When either is missing, the settings file (YAML, TOML or .env) is read
for the same keys.`,
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configCheckCommand())

	return cmd
}

// configPathCommand prints the settings file path in effect.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the credentials settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.options(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Config)
			return nil
		},
	}
}

// configCheckCommand reports whether credentials can be resolved.
func (c *CLI) configCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that credentials can be resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.options(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if hestore.CheckEnvironment(nil) {
				printSuccess(out, "Credentials found in environment")
				return nil
			}
			printInfo(out, "%s/%s not set, trying settings file", hestore.EnvToken, hestore.EnvSecret)
			printDetail(out, "%s", cfg.Config)

			if _, err := hestore.NewResolver(cfg.Config).Resolve(false); err != nil {
				printError(out, "No usable credentials")
				return apperrors.Wrap(apperrors.ErrCodeMissingCredentials, err, "check credentials")
			}
			printSuccess(out, "Credentials found in %s", cfg.Config)
			return nil
		},
	}
}
