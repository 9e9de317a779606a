package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethpandaops/cij-analyser/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	envFile string
	verbose bool
	cfg     *config.Config

	rootCmd = &cobra.Command{
		Use:   "cij-analyser",
		Short: "CIJ Analyser - performance requirement analysis for test runs",
		Long: `CIJ Analyser extracts metrics from test case artifacts and checks them against
performance requirements, recording pass/fail in the run record.

Run without arguments to launch interactive mode, or use subcommands for direct operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}

			cfg = config.FromEnv()
			configureLogger(Logger, cfg.LogLevel, verbose)

			return nil
		},
	}
)

// exitCodeError carries the number of errors an action encountered.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("%d error(s) encountered", e.code)
}

func exitCode(n int) error {
	if n == 0 {
		return nil
	}

	return &exitCodeError{code: n}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// InitLogger configures the shared logger from the environment
func InitLogger() {
	configureLogger(Logger, os.Getenv(config.EnvLogLevel), false)
}

func init() {
	Logger = logrus.New()

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Env file to load (default .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
