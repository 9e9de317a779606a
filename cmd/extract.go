package cmd

import (
	"github.com/ethpandaops/cij-analyser/internal/actions"
	"github.com/spf13/cobra"
)

var extractOpts actions.ExtractOptions

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract metrics from test case artifacts",
	Long: `Run an extractor over every test case of a run record.

The extractor reads the raw tool output found in each test case aux root and writes
the measured metrics to metrics.yml next to it, replacing previous contents.

Examples:
  cij-analyser extract --trun output/trun.yml --extractor fio_json_iops_read
  CIJ_EXTRACTOR=fio_json_iops_read cij-analyser extract --trun output/trun.yml`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return exitCode(actions.Extract(Logger, cfg, extractOpts))
	},
}

var extractorsCmd = &cobra.Command{
	Use:   "extractors",
	Short: "List the available extractors",
	Run: func(c *cobra.Command, _ []string) {
		actions.ListExtractors(Logger, c.OutOrStdout())
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractOpts.TrunPath, "trun", "", "Path to the run record (trun.yml)")
	extractCmd.Flags().StringVar(&extractOpts.Extractor, "extractor", "", "Name of the extractor to run (default $CIJ_EXTRACTOR)")
	_ = extractCmd.MarkFlagRequired("trun")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(extractorsCmd)
}
