package dohook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/dohook/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// RenderError formats a command error for the terminal. Coded errors are
// followed by their details, one per line in key order.
func RenderError(err error) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))

	if errors.GetErrorCode(err) == errors.ErrUnknown {
		return b.String()
	}

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(fmt.Sprintf("  %s: %v", k, details[k])))
	}
	return b.String()
}
