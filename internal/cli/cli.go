// Package cli implements the partlookup command-line interface.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/partlookup/internal/config"
	"github.com/matzehuels/partlookup/pkg/buildinfo"
	apperrors "github.com/matzehuels/partlookup/pkg/errors"
	"github.com/matzehuels/partlookup/pkg/integrations"
	"github.com/matzehuels/partlookup/pkg/integrations/hestore"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// flag values; only applied when set on the command line
	configPath string
	apiHost    string
	timeout    time.Duration
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          config.AppName,
		Short:        "Look up electronic parts in the HESTORE catalog",
		Long:         `partlookup queries the HESTORE vendor API for a manufacturer part number and prints its SKU, description, product page and price breaks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "credentials settings file (default "+config.DefaultSettingsPath()+")")
	flags.StringVar(&c.apiHost, "api-host", "", "API base URL (default "+hestore.DefaultAPIHost+")")
	flags.DurationVar(&c.timeout, "timeout", 0, "HTTP request timeout (default 10s)")

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.testCommand())
	root.AddCommand(c.keysCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options & Client Factory
// =============================================================================

// options loads PARTLOOKUP_* options and applies command-line overrides.
func (c *CLI) options(cmd *cobra.Command) (*config.Options, error) {
	opts, err := config.Load()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "load %s* options", config.EnvPrefix)
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		opts.Config = c.configPath
	}
	if flags.Changed("api-host") {
		opts.APIHost = c.apiHost
	}
	if flags.Changed("timeout") {
		opts.Timeout = c.timeout
	}

	if err := opts.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "invalid options")
	}
	c.Logger.Debug("options loaded", "api_host", opts.APIHost, "timeout", opts.Timeout, "config", opts.Config)
	return opts, nil
}

// newClient creates a HESTORE client for the resolved options.
func (c *CLI) newClient(opts *config.Options) *hestore.Client {
	return hestore.NewClient(hestore.Options{
		APIHost:    opts.APIHost,
		Format:     opts.Format,
		HTTPClient: integrations.NewHTTPClientWithTimeout(opts.Timeout),
		Resolver:   hestore.NewResolver(opts.Config),
		Logger:     c.Logger,
	})
}
