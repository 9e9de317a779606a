// Package report collects requirement analysis results and renders them as tables.
package report

import (
	"time"

	"github.com/ethpandaops/cij-analyser/internal/requirement"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/sirupsen/logrus"
)

// CaseResult captures the requirement analysis of a single test case.
type CaseResult struct {
	Suite        string
	Case         string
	Status       runner.Status
	Requirements []string
	Records      int
	Checked      []requirement.CheckedRequirement
	Errors       int
	Duration     time.Duration
	Timestamp    time.Time
}

// Passed returns the number of checked requirements without the error flag.
func (c *CaseResult) Passed() int {
	return len(c.Checked) - requirement.CountErrors(c.Checked)
}

// Failed returns the checked requirements with the error flag set.
func (c *CaseResult) Failed() []requirement.CheckedRequirement {
	failed := make([]requirement.CheckedRequirement, 0)

	for _, cp := range c.Checked {
		if cp.Error {
			failed = append(failed, cp)
		}
	}

	return failed
}

// Summary provides aggregate statistics across an analysis pass.
type Summary struct {
	TotalDuration  time.Duration
	RunStatus      runner.Status
	Suites         int
	SuitesFailed   int
	CasesChecked   int
	CasesPassed    int
	CasesFailed    int
	Outcomes       int
	OutcomesFailed int
}

// Collector records case results during an analysis pass.
type Collector interface {
	RecordCase(result *CaseResult)
	RecordSuite(name string, status runner.Status)
	RecordRun(status runner.Status)
	GetCaseResults() []CaseResult
	GetSummary() Summary
}

type collector struct {
	log       logrus.FieldLogger
	cases     []CaseResult
	suites    map[string]runner.Status
	runStatus runner.Status
	startTime time.Time
}

// NewCollector creates a new result collector
func NewCollector(log logrus.FieldLogger) Collector {
	return &collector{
		log:       log.WithField("component", "report_collector"),
		cases:     make([]CaseResult, 0, 50),
		suites:    make(map[string]runner.Status),
		runStatus: runner.StatusUnknown,
		startTime: time.Now(),
	}
}

func (c *collector) RecordCase(result *CaseResult) {
	c.cases = append(c.cases, *result)
}

func (c *collector) RecordSuite(name string, status runner.Status) {
	c.suites[name] = status
}

func (c *collector) RecordRun(status runner.Status) {
	c.runStatus = status

	c.log.WithFields(logrus.Fields{
		"status": status,
		"cases":  len(c.cases),
	}).Debug("run recorded")
}

func (c *collector) GetCaseResults() []CaseResult {
	result := make([]CaseResult, len(c.cases))
	copy(result, c.cases)

	return result
}

func (c *collector) GetSummary() Summary {
	summary := Summary{
		TotalDuration: time.Since(c.startTime),
		RunStatus:     c.runStatus,
		Suites:        len(c.suites),
		CasesChecked:  len(c.cases),
	}

	for _, status := range c.suites {
		if status == runner.StatusFail {
			summary.SuitesFailed++
		}
	}

	for i := range c.cases {
		tc := &c.cases[i]

		if tc.Status == runner.StatusFail {
			summary.CasesFailed++
		} else {
			summary.CasesPassed++
		}

		summary.Outcomes += len(tc.Checked)
		summary.OutcomesFailed += len(tc.Failed())
	}

	return summary
}

// Compile-time interface compliance check
var _ Collector = (*collector)(nil)
