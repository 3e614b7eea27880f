package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ohad12345678/payslip/internal/model"
)

// Table renders rows under a header with columns padded to their widest cell.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	render := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = TableCellStyle.Width(widths[i] + 2).Render(cell)
		}
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, render(header, TableHeaderStyle))
	for _, row := range rows {
		lines = append(lines, render(row, lipgloss.NewStyle()))
	}
	return strings.Join(lines, "\n")
}

// RecordTable renders one line per statement with the headline fields.
func RecordTable(docs []*model.Document) string {
	header := []string{"Source", "Employee", "Name", "Period", "Gross", "Net", "150%", "125%"}
	var rows [][]string
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for i := range doc.Records {
			r := &doc.Records[i]
			rows = append(rows, []string{
				doc.Source,
				text(r.Employee.ID),
				text(r.Employee.Name),
				period(r.Period),
				amount(r.Salary.Gross),
				amount(r.Salary.Net),
				amount(r.HourAggregates.Rate150),
				amount(r.HourAggregates.Rate125),
			})
		}
	}
	return Table(header, rows)
}

// Summary renders per-document counts and a totals line.
func Summary(docs []*model.Document) string {
	header := []string{"Source", "Segments", "Statements", "Dropped", "Status"}
	var rows [][]string
	total, failed := 0, 0
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		status := SuccessStyle.Render(SuccessIcon)
		if !doc.OK() {
			status = ErrorStyle.Render(ErrorIcon + " " + doc.Error)
			failed++
		}
		total += len(doc.Records)
		rows = append(rows, []string{
			doc.Source,
			fmt.Sprint(doc.Segments),
			fmt.Sprint(len(doc.Records)),
			fmt.Sprint(doc.Dropped),
			status,
		})
	}

	footer := FormatSuccess(fmt.Sprintf("%d statements from %d documents", total, len(rows)))
	if failed > 0 {
		footer += "\n" + FormatWarning(fmt.Sprintf("%d documents had no text", failed))
	}
	return Table(header, rows) + "\n\n" + footer
}

func text(p *string) string {
	if p == nil {
		return SubtleStyle.Render("-")
	}
	return *p
}

func amount(p *float64) string {
	if p == nil {
		return SubtleStyle.Render("-")
	}
	return fmt.Sprintf("%.2f", *p)
}

func period(p model.Period) string {
	if p.Month == nil || p.Year == nil {
		return SubtleStyle.Render("-")
	}
	return fmt.Sprintf("%02d/%d", *p.Month, *p.Year)
}
