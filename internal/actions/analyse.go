// Package actions contains the top-level operations shared by the CLI and interactive mode.
// Each action handles its own errors and reports them as an error count.
package actions

import (
	"fmt"
	"io"

	"github.com/ethpandaops/cij-analyser/internal/analyser"
	"github.com/ethpandaops/cij-analyser/internal/config"
	"github.com/ethpandaops/cij-analyser/internal/report"
	"github.com/ethpandaops/cij-analyser/internal/requirement"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/sirupsen/logrus"
)

// AnalyseOptions selects the inputs of an analysis pass.
type AnalyseOptions struct {
	// TrunPath is the run record to analyse and update.
	TrunPath string
	// PreqsPath is the performance requirement declaration. Requirements are not analysed
	// when empty.
	PreqsPath string
	// Output receives the result tables. Nothing is printed when nil.
	Output io.Writer
}

// Analyse runs the analysis steps against the run record and saves it. It returns zero on
// success and the number of errors encountered otherwise.
func Analyse(log logrus.FieldLogger, cfg *config.Config, opts AnalyseOptions) int {
	log = log.WithField("action", "analyse")

	if err := analyse(log, cfg, opts); err != nil {
		log.WithError(err).Error("failed to run analysis")

		return 1
	}

	return 0
}

func analyse(log logrus.FieldLogger, cfg *config.Config, opts AnalyseOptions) error {
	trun, err := runner.Load(opts.TrunPath)
	if err != nil {
		return err
	}

	if opts.PreqsPath != "" {
		status, err := analysePreqs(log, cfg, trun, opts)
		if err != nil {
			return fmt.Errorf("failed to analyse performance requirements: %w", err)
		}

		log.WithField("status", status).Info("successfully analysed performance requirements")
	}

	if err := runner.Save(trun); err != nil {
		return err
	}

	log.WithField("trun", trun.Fpath).Debug("saved run record")

	return nil
}

func analysePreqs(
	log logrus.FieldLogger,
	cfg *config.Config,
	trun *runner.TestRun,
	opts AnalyseOptions,
) (runner.Status, error) {
	declr, err := requirement.LoadDeclaration(opts.PreqsPath)
	if err != nil {
		return runner.StatusUnknown, err
	}

	collector := report.NewCollector(log)

	status, err := analyser.New(log, cfg, collector).Analyse(trun, declr)
	if err != nil {
		return runner.StatusUnknown, err
	}

	if opts.Output != nil {
		printer := report.NewPrinter(opts.Output, collector, !cfg.NoColor)
		printer.PrintResults()
		printer.PrintSummary()
	}

	return status, nil
}
