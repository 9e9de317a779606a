package cmd

import (
	"github.com/ethpandaops/cij-analyser/internal/actions"
	"github.com/spf13/cobra"
)

var analyseOpts actions.AnalyseOptions

var analyseCmd = &cobra.Command{
	Use:     "analyse",
	Aliases: []string{"analyze"},
	Short:   "Check performance requirements and update the run record",
	Long: `Check the metrics of every test case against a performance requirement declaration
and record pass/fail on test cases, test suites and the test run.

Declaration format:
  global:
    testcases:
      read_test:
        iops: "[1000;2000]"
  my_suite:
    read_test:
      iops: "[1500;inf["

Intervals use mixed-bracket notation with an optional unit, e.g. "]-inf;5]msec".

Examples:
  cij-analyser analyse --trun output/trun.yml --preqs preqs.yml`,
	RunE: func(c *cobra.Command, _ []string) error {
		analyseOpts.Output = c.OutOrStdout()

		return exitCode(actions.Analyse(Logger, cfg, analyseOpts))
	},
}

func init() {
	analyseCmd.Flags().StringVar(&analyseOpts.TrunPath, "trun", "", "Path to the run record (trun.yml)")
	analyseCmd.Flags().StringVar(&analyseOpts.PreqsPath, "preqs", "", "Path to the performance requirement declaration")
	_ = analyseCmd.MarkFlagRequired("trun")

	rootCmd.AddCommand(analyseCmd)
}
