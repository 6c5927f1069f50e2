package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	noColor bool
	heading lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
	result  lipgloss.Style
}

func newStyles(out io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		noColor: noColor,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		warning: r.NewStyle().Foreground(lipgloss.Color("196")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
		result:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

// render applies style unless color output is disabled.
func (s styles) render(style lipgloss.Style, text string) string {
	if s.noColor {
		return text
	}
	return style.Render(text)
}
