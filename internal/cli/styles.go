// Package cli renders payslip command output: styled messages, tables,
// progress, and reading of decoded text inputs.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Adaptive colors keep tables readable on light terminals.
var (
	accent  = lipgloss.AdaptiveColor{Light: "#1F4E9E", Dark: "#5B8DEF"}
	good    = lipgloss.AdaptiveColor{Light: "#137D74", Dark: "#4ECDC4"}
	caution = lipgloss.AdaptiveColor{Light: "#9A6A00", Dark: "#FFE66D"}
	bad     = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}
	muted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#666666"}
	rule    = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#333333"}
)

var (
	// TitleStyle heads a command's output block.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	// SuccessStyle marks parsed documents and passed checks.
	SuccessStyle = lipgloss.NewStyle().Foreground(good)

	// WarningStyle marks documents that produced no statements.
	WarningStyle = lipgloss.NewStyle().Foreground(caution)

	// ErrorStyle marks failures and missing identities.
	ErrorStyle = lipgloss.NewStyle().Foreground(bad)

	// InfoStyle is used for counts and hints.
	InfoStyle = lipgloss.NewStyle().Foreground(accent)

	// SubtleStyle renders absent values.
	SubtleStyle = lipgloss.NewStyle().Foreground(muted)

	// TableHeaderStyle underlines table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(rule)

	// TableCellStyle pads table cells.
	TableCellStyle = lipgloss.NewStyle().PaddingRight(2)

	// FlagStyle marks lines the normalizer rewrote.
	FlagStyle = lipgloss.NewStyle().Bold(true).Foreground(caution)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠"
	InfoIcon    = "ℹ"
	PayslipIcon = "🧾"
	FlagIcon    = "↔"
)

// FormatSuccess prefixes message with a check mark.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError prefixes message with a cross.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning prefixes message with a warning sign.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo prefixes message with an info sign.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle renders a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(PayslipIcon + " " + title)
}
