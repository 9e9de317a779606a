package report

import (
	"fmt"
	"io"
)

// Printer writes the collected results to a writer.
type Printer struct {
	writer    io.Writer
	collector Collector
	results   *ResultsFormatter
	summary   *SummaryFormatter
}

// NewPrinter creates a printer rendering the collector's results with colors when enabled.
func NewPrinter(writer io.Writer, collector Collector, colorsEnabled bool) *Printer {
	var (
		renderer = NewRenderer()
		colors   = NewColorHelper(colorsEnabled)
	)

	return &Printer{
		writer:    writer,
		collector: collector,
		results:   NewResultsFormatter(renderer, colors),
		summary:   NewSummaryFormatter(renderer, colors),
	}
}

// PrintResults prints a table of case results
func (p *Printer) PrintResults() {
	fmt.Fprintln(p.writer, p.results.Format(p.collector.GetCaseResults()))
}

// PrintSummary prints a summary table with aggregate statistics
func (p *Printer) PrintSummary() {
	fmt.Fprintln(p.writer, p.summary.Format(p.collector.GetSummary()))
}
