package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WriteText writes r as a single styled line such as "add(2, 3) = 5".
// Color is used only when w is a TTY; pipes, files and buffers get
// plain text.
func WriteText(w io.Writer, r Result) error {
	s := DefaultStyles(lipgloss.NewRenderer(w))

	operands := make([]string, 0, len(r.Operands))
	for _, o := range r.Operands {
		operands = append(operands, formatNumber(o))
	}

	_, err := fmt.Fprintf(w, "%s%s%s%s %s\n",
		s.Operation.Render(r.Operation),
		s.Muted.Render("("),
		s.Operand.Render(strings.Join(operands, ", ")),
		s.Muted.Render(")"),
		s.Muted.Render("=")+" "+s.Value.Render(formatNumber(r.Value)))
	return err
}

// formatNumber prints the shortest representation that round-trips,
// so 5 stays "5" and 2.5 stays "2.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
