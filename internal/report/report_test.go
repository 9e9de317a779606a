package report

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ethpandaops/cij-analyser/internal/metrics"
	"github.com/ethpandaops/cij-analyser/internal/requirement"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollectorWithResults() Collector {
	c := NewCollector(logrus.New())

	c.RecordCase(&CaseResult{
		Suite:        "fio",
		Case:         "read_test",
		Status:       runner.StatusPass,
		Requirements: []string{"iops"},
		Records:      1,
		Checked: []requirement.CheckedRequirement{
			{Key: "iops", Msg: "1500.000 in [1000;2000] satisfied"},
		},
		Duration: 2 * time.Millisecond,
	})
	c.RecordCase(&CaseResult{
		Suite:        "fio",
		Case:         "write_test",
		Status:       runner.StatusFail,
		Requirements: []string{"iops"},
		Records:      2,
		Errors:       1,
		Checked: []requirement.CheckedRequirement{
			{Key: "iops", Msg: "1500.000 in [1000;2000] satisfied"},
			{Key: "iops", Error: true, Msg: "2500.000 in [1000;2000] failed", Ctx: metrics.Context{"job_id": 1}},
		},
	})
	c.RecordCase(&CaseResult{
		Suite:        "blk",
		Case:         "trim_test",
		Status:       runner.StatusFail,
		Requirements: []string{"iops", "lat"},
		Errors:       1,
	})
	c.RecordSuite("fio", runner.StatusFail)
	c.RecordSuite("blk", runner.StatusFail)
	c.RecordSuite("empty", runner.StatusPass)
	c.RecordRun(runner.StatusFail)

	return c
}

func TestCollector_Summary(t *testing.T) {
	summary := newCollectorWithResults().GetSummary()

	assert.Equal(t, runner.StatusFail, summary.RunStatus)
	assert.Equal(t, 3, summary.Suites)
	assert.Equal(t, 2, summary.SuitesFailed)
	assert.Equal(t, 3, summary.CasesChecked)
	assert.Equal(t, 1, summary.CasesPassed)
	assert.Equal(t, 2, summary.CasesFailed)
	assert.Equal(t, 3, summary.Outcomes)
	assert.Equal(t, 1, summary.OutcomesFailed)
}

func TestCollector_GetCaseResultsIsCopy(t *testing.T) {
	c := newCollectorWithResults()

	results := c.GetCaseResults()
	require.Len(t, results, 3)

	results[0].Case = "changed"
	assert.Equal(t, "read_test", c.GetCaseResults()[0].Case)
}

func TestCaseResult_PassedFailed(t *testing.T) {
	results := newCollectorWithResults().GetCaseResults()

	assert.Equal(t, 1, results[1].Passed())
	require.Len(t, results[1].Failed(), 1)
	assert.Equal(t, "2500.000 in [1000;2000] failed", results[1].Failed()[0].Msg)
	assert.Empty(t, results[2].Failed())
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer

	printer := NewPrinter(&buf, newCollectorWithResults(), false)
	printer.PrintResults()
	printer.PrintSummary()

	out := buf.String()

	assert.Contains(t, out, "▸ Performance Requirements")
	assert.Contains(t, out, "read_test")
	assert.Contains(t, out, "✓ PASS")
	assert.Contains(t, out, "✗ FAIL")
	assert.Contains(t, out, "1/2 failed")
	assert.Contains(t, out, "no metrics measured")
	assert.Contains(t, out, "▸ Failed Requirement Details")
	assert.Contains(t, out, "fio/write_test")
	assert.Contains(t, out, "2500.000 in [1000;2000] failed")
	assert.Contains(t, out, "map[job_id:1]")
	assert.Contains(t, out, "expected iops, lat to be measured")
	assert.Contains(t, out, "▸ Summary")
	assert.Contains(t, out, "Cases Checked")
	assert.NotContains(t, out, "fio/read_test")
}

func TestResultsFormatter_Empty(t *testing.T) {
	f := NewResultsFormatter(NewRenderer(), NewColorHelper(false))
	assert.Equal(t, "No test cases with performance requirements", f.Format(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))

	long := truncate("жжжжжжжжжжжжжж.txt", 10)
	assert.Equal(t, "жжжжжжж...", long)
	assert.True(t, utf8.ValidString(long))
	assert.Equal(t, "жжж", truncate("жжж", 3))
}
