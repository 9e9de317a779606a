// Package analyser checks performance requirements for every test case of a run and
// rolls the verdicts up into suite and run requirement statuses.
package analyser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethpandaops/cij-analyser/internal/config"
	"github.com/ethpandaops/cij-analyser/internal/metrics"
	"github.com/ethpandaops/cij-analyser/internal/report"
	"github.com/ethpandaops/cij-analyser/internal/requirement"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/sirupsen/logrus"
)

var errNoAnalysisLog = errors.New("test case has no analysis log path")

// Analyser enforces performance requirements on a test run.
type Analyser interface {
	// Analyse updates the requirement status of the run, its suites and every test case
	// with applicable requirements, and returns the run status.
	Analyse(trun *runner.TestRun, declr *requirement.Declaration) (runner.Status, error)
}

type analyser struct {
	log       logrus.FieldLogger
	cfg       *config.Config
	collector report.Collector
	now       func() time.Time
}

// New creates an analyser. Results of checked cases are recorded in collector.
func New(log logrus.FieldLogger, cfg *config.Config, collector report.Collector) Analyser {
	return &analyser{
		log:       log.WithField("component", "analyser"),
		cfg:       cfg,
		collector: collector,
		now:       time.Now,
	}
}

func (a *analyser) Analyse(trun *runner.TestRun, declr *requirement.Declaration) (runner.Status, error) {
	runFailed := false

	for _, tsuite := range trun.Testsuites {
		suiteFailed := false

		for _, tcase := range tsuite.Testcases {
			reqs := declr.ForCase(tsuite.Name, tcase.Name)
			if len(reqs) == 0 {
				continue
			}

			result, err := a.analyseCase(tsuite, tcase, reqs)
			if err != nil {
				return runner.StatusUnknown, fmt.Errorf("%s/%s: %w", tsuite.Name, tcase.Name, err)
			}

			tcase.StatusPreq = result.Status
			if result.Status == runner.StatusFail {
				suiteFailed = true
			}

			a.collector.RecordCase(result)
		}

		tsuite.StatusPreq = verdict(suiteFailed)
		a.collector.RecordSuite(tsuite.Name, tsuite.StatusPreq)

		runFailed = runFailed || suiteFailed
	}

	trun.StatusPreq = verdict(runFailed)
	a.collector.RecordRun(trun.StatusPreq)

	return trun.StatusPreq, nil
}

// analyseCase checks reqs against every metric record of the case and appends one line per
// outcome to the case analysis log.
func (a *analyser) analyseCase(
	tsuite *runner.TestSuite,
	tcase *runner.TestCase,
	reqs requirement.Requirements,
) (result *report.CaseResult, err error) {
	var (
		start = a.now()
		keys  = reqs.Keys()
		log   = a.log.WithFields(logrus.Fields{
			"testsuite": tsuite.Name,
			"testcase":  tcase.Name,
		})
	)

	log.WithField("requirements", keys).Info("checking performance requirements")

	records, err := metrics.Load(tcase.AuxPath())
	if err != nil {
		return nil, err
	}

	logPath := tcase.AnalysisLogPath()
	if logPath == "" {
		return nil, errNoAnalysisLog
	}

	alog, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G302: analysis log is a shared artifact
	if err != nil {
		return nil, fmt.Errorf("opening analysis log: %w", err)
	}

	defer func() {
		if cerr := alog.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing analysis log: %w", cerr)
		}
	}()

	result = &report.CaseResult{
		Suite:        tsuite.Name,
		Case:         tcase.Name,
		Requirements: keys,
		Records:      len(records),
		Timestamp:    start,
	}

	if len(records) == 0 {
		result.Errors++

		msg := fmt.Sprintf("expected {%s} to be measured", strings.Join(keys, ", "))
		log.Error(msg)

		if err := a.writeLine(alog, msg); err != nil {
			return nil, err
		}
	}

	for _, record := range records {
		checked := requirement.Check(reqs, record)

		for _, cp := range checked {
			entry := log.WithField("key", cp.Key)
			if cp.Error {
				entry.Error(cp.Msg)
			} else {
				entry.Info(cp.Msg)
			}

			if err := a.writeLine(alog, cp.String()); err != nil {
				return nil, err
			}
		}

		result.Checked = append(result.Checked, checked...)
		result.Errors += requirement.CountErrors(checked)
	}

	result.Status = verdict(result.Errors > 0)
	result.Duration = a.now().Sub(start)

	log.WithFields(logrus.Fields{
		"status":       result.Status,
		"errors":       result.Errors,
		"analysis_log": logPath,
	}).Info("flushed analysis log")

	return result, nil
}

func (a *analyser) writeLine(w io.Writer, line string) error {
	if _, err := fmt.Fprintf(w, "# %s%s\n", a.cfg.Timestamp(a.now()), line); err != nil {
		return fmt.Errorf("writing analysis log: %w", err)
	}

	return nil
}

func verdict(failed bool) runner.Status {
	if failed {
		return runner.StatusFail
	}

	return runner.StatusPass
}

// Compile-time interface compliance check
var _ Analyser = (*analyser)(nil)
