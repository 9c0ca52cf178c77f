package terminal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/de-tools/insure-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/insure-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/insure-atlas/pkg/services/config"
	"github.com/de-tools/insure-atlas/pkg/store"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	opts       Options
	reporter   *export.Reporter
	rootCmd    *cobra.Command
	configPath string
	verbose    bool
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Logs receives diagnostics; defaults to stderr.
	Logs io.Writer
	// Provider replaces the data provider selected by the settings file.
	Provider provider.Provider
	Now      func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cli := &CLI{
		opts:     opts,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the CLI with ctx as the command context.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides the process arguments, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "insure-atlas",
		Short:         "Insurance reports from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if cli.verbose {
				level = zerolog.InfoLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.opts.Logs, NoColor: true}).
				Level(level).
				With().Timestamp().Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a settings file")
	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Log progress to stderr")

	env := commands.Env{
		Reporter:     cli.reporter,
		Settings:     cli.settings,
		OpenProvider: cli.openProvider,
		Now:          cli.opts.Now,
	}
	cmd.AddCommand(commands.NewSeriesCmd(env))
	cmd.AddCommand(commands.NewExportCmd(env))
	cmd.AddCommand(commands.NewSinksCmd(env))

	return cmd
}

func (cli *CLI) settings() (*config.Settings, error) {
	return config.LoadSettings(cli.configPath)
}

func (cli *CLI) openProvider(ctx context.Context) (provider.Provider, func() error, error) {
	if cli.opts.Provider != nil {
		return cli.opts.Provider, func() error { return nil }, nil
	}
	settings, err := cli.settings()
	if err != nil {
		return nil, nil, err
	}
	return store.Open(ctx, settings.Store)
}
