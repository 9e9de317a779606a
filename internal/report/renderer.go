package report

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
)

// Renderer renders rows as a bordered table.
type Renderer interface {
	RenderToString(headers []string, rows [][]string) string
}

type renderer struct{}

// NewRenderer creates a new table renderer
func NewRenderer() Renderer {
	return &renderer{}
}

func (r *renderer) RenderToString(headers []string, rows [][]string) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetBorder(true)
	table.SetTablePadding(" ")

	table.AppendBulk(rows)
	table.Render()

	return buf.String()
}

// Compile-time interface compliance check
var _ Renderer = (*renderer)(nil)
