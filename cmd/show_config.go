package cmd

import (
	"fmt"

	"github.com/ethpandaops/cij-analyser/internal/actions"
	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Display the resolved configuration",
	Long: `Shows the configuration resolved from the .env file (or --env) and the environment:
LOG_LEVEL, CIJ_ECHO_TIME_STAMP, CIJ_NO_COLOR and CIJ_EXTRACTOR.`,
	RunE: func(c *cobra.Command, _ []string) error {
		if err := actions.ShowConfig(c.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to show config: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
