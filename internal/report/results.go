package report

import (
	"fmt"
	"strings"

	"github.com/ethpandaops/cij-analyser/internal/runner"
)

// ResultsFormatter formats case results as a table followed by failure details.
type ResultsFormatter struct {
	renderer Renderer
	colors   *ColorHelper
}

// NewResultsFormatter creates a new results table formatter.
func NewResultsFormatter(renderer Renderer, colors *ColorHelper) *ResultsFormatter {
	return &ResultsFormatter{
		renderer: renderer,
		colors:   colors,
	}
}

// Format converts case results into a formatted table string with failure details.
func (f *ResultsFormatter) Format(results []CaseResult) string {
	if len(results) == 0 {
		return "No test cases with performance requirements"
	}

	var (
		headers = []string{"Suite", "Case", "Status", "Requirements", "Records", "Details"}
		rows    = make([][]string, 0, len(results))
		failed  = make([]CaseResult, 0)
	)

	for _, result := range results {
		var details string

		if result.Status == runner.StatusFail {
			failed = append(failed, result)

			switch {
			case result.Records == 0:
				details = f.colors.Failure("no metrics measured")
			default:
				details = f.colors.Failure(fmt.Sprintf("%d/%d failed", len(result.Failed()), len(result.Checked)))
			}
		}

		rows = append(rows, []string{
			result.Suite,
			result.Case,
			f.colors.FormatStatus(result.Status),
			f.colors.FormatRatio(result.Passed(), len(result.Checked)),
			fmt.Sprintf("%d", result.Records),
			details,
		})
	}

	output := "\n" + f.colors.Header("▸ Performance Requirements") + "\n\n" + f.renderer.RenderToString(headers, rows)

	if len(failed) > 0 {
		output += f.formatFailureDetails(failed)
	}

	return output
}

// formatFailureDetails lists every failed requirement of the failed cases
func (f *ResultsFormatter) formatFailureDetails(failed []CaseResult) string {
	var builder strings.Builder

	builder.WriteString("\n\n" + f.colors.Header("▸ Failed Requirement Details") + "\n\n")

	for i, result := range failed {
		if i > 0 {
			builder.WriteString("\n")
		}

		builder.WriteString(fmt.Sprintf("%s/%s (%s)\n", result.Suite, result.Case, formatDuration(result.Duration)))

		if result.Records == 0 {
			builder.WriteString(fmt.Sprintf("  %s: expected %s to be measured\n",
				f.colors.Failure("Error"),
				strings.Join(result.Requirements, ", "),
			))

			continue
		}

		for _, cp := range result.Failed() {
			builder.WriteString(fmt.Sprintf("  %s %s: %s\n",
				f.colors.Failure("✗"),
				cp.Key,
				cp.Msg,
			))

			if len(cp.Ctx) > 0 {
				builder.WriteString(fmt.Sprintf("    %s: %s\n",
					f.colors.Info("Context"),
					truncate(fmt.Sprintf("%v", map[string]any(cp.Ctx)), 120),
				))
			}
		}
	}

	return builder.String()
}
