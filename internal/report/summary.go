package report

import "fmt"

// SummaryFormatter formats summary statistics as a table.
type SummaryFormatter struct {
	renderer Renderer
	colors   *ColorHelper
}

// NewSummaryFormatter creates a new summary table formatter.
func NewSummaryFormatter(renderer Renderer, colors *ColorHelper) *SummaryFormatter {
	return &SummaryFormatter{
		renderer: renderer,
		colors:   colors,
	}
}

// Format converts a summary into a formatted table string.
func (f *SummaryFormatter) Format(summary Summary) string {
	failedCases := fmt.Sprintf("%d", summary.CasesFailed)
	if summary.CasesFailed > 0 {
		failedCases = f.colors.Failure(failedCases)
	}

	failedSuites := fmt.Sprintf("%d", summary.SuitesFailed)
	if summary.SuitesFailed > 0 {
		failedSuites = f.colors.Failure(failedSuites)
	}

	var (
		headers = []string{"Metric", "Value"}
		rows    = [][]string{
			{"Run Status", f.colors.FormatStatus(summary.RunStatus)},
			{"Suites", fmt.Sprintf("%d", summary.Suites)},
			{"Suites Failed", failedSuites},
			{"Cases Checked", fmt.Sprintf("%d", summary.CasesChecked)},
			{"Cases Passed", f.colors.Success(fmt.Sprintf("%d", summary.CasesPassed))},
			{"Cases Failed", failedCases},
			{"Requirements Checked", f.colors.FormatRatio(summary.Outcomes-summary.OutcomesFailed, summary.Outcomes)},
			{"Total Duration", formatDuration(summary.TotalDuration)},
		}
	)

	return "\n" + f.colors.Header("▸ Summary") + "\n\n" + f.renderer.RenderToString(headers, rows)
}
