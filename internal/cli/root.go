// Package cli implements the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hightemp/codeconv/internal/config"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitLoadFailed   = 3
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// app holds flag values and state shared by the subcommands.
type app struct {
	countryFile  string
	languageFile string
	jsonOutput   bool
	verbose      bool

	cfg *config.Config
	log *logrus.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Convert between country/language codes and names",
		Long: `codeconv converts ISO-3166 country codes and ISO-639 language codes
to names and back, using built-in tab-separated tables or your own.

Single lookups:
  codeconv country name can
  codeconv country code France
  codeconv language name en

Batch lookups (read one query per line from stdin):
  cat codes.txt | codeconv country name`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.countryFile, "country-file", "", "country table path (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&a.languageFile, "language-file", "", "language table path (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log table loading diagnostics to stderr")

	rootCmd.AddCommand(a.countryCmd())
	rootCmd.AddCommand(a.languageCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration; flags given on the command line win over
// the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return &exitError{code: ExitInvalidInput, err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("country-file") {
		cfg.CountryFile = a.countryFile
	}
	if flags.Changed("language-file") {
		cfg.LanguageFile = a.languageFile
	}
	if flags.Changed("json") {
		cfg.JSONOutput = a.jsonOutput
	}
	if a.verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}

	l, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return &exitError{code: ExitInvalidInput, err: err}
	}
	a.cfg, a.log = cfg, l
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", config.AppName, Version, Commit, BuildTime)
		},
	}
}

// Execute runs the root command and exits with the matching code on failure.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitInvalidInput
}
