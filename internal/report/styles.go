package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal result output.
// Styles built from a renderer degrade to no-color when that
// renderer's output is not a TTY.
type Styles struct {
	// Operation styles the operation name (e.g. "add").
	Operation lipgloss.Style

	// Operand styles the comma-separated operand list.
	Operand lipgloss.Style

	// Value styles the computed result.
	Value lipgloss.Style

	// Muted is used for punctuation and the equals sign.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme bound to r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Operation: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Operand:   r.NewStyle(),
		Value:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("40")),
		Muted:     r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
