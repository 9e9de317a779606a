package report

import (
	"fmt"

	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/fatih/color"
)

// ColorHelper paints report text. It is a no-op when colors are disabled in the config
// or the output is not a terminal.
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a color helper.
func NewColorHelper(enabled bool) *ColorHelper {
	return &ColorHelper{
		enabled: enabled && !color.NoColor,
	}
}

func (c *ColorHelper) paint(text string, attrs ...color.Attribute) string {
	if !c.enabled {
		return text
	}

	return color.New(attrs...).Sprint(text)
}

// Success paints passing verdicts.
func (c *ColorHelper) Success(text string) string { return c.paint(text, color.FgGreen) }

// Failure paints failing verdicts and error counts.
func (c *ColorHelper) Failure(text string) string { return c.paint(text, color.FgRed) }

// Warning paints partial results.
func (c *ColorHelper) Warning(text string) string { return c.paint(text, color.FgYellow) }

// Info paints labels.
func (c *ColorHelper) Info(text string) string { return c.paint(text, color.FgCyan) }

// Muted paints unknown verdicts.
func (c *ColorHelper) Muted(text string) string { return c.paint(text, color.FgHiBlack) }

// Header paints section titles.
func (c *ColorHelper) Header(text string) string { return c.paint(text, color.FgCyan, color.Bold) }

// FormatStatus renders a requirement status with its symbol.
func (c *ColorHelper) FormatStatus(status runner.Status) string {
	switch status {
	case runner.StatusPass:
		return c.Success("✓ PASS")
	case runner.StatusFail:
		return c.Failure("✗ FAIL")
	default:
		return c.Muted("? UNKN")
	}
}

// FormatRatio renders "passed/total": green when everything passed, red when nothing did.
func (c *ColorHelper) FormatRatio(passed, total int) string {
	text := fmt.Sprintf("%d/%d", passed, total)

	switch passed {
	case total:
		return c.Success(text)
	case 0:
		return c.Failure(text)
	default:
		return c.Warning(text)
	}
}
