// SPDX-License-Identifier: MIT

package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorRule    = lipgloss.Color("#2C4A54")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#16858E")
)

// painter decorates one line of text.
type painter func(string) string

func plain(s string) string { return s }

// styles groups the painters used by the transcript.
type styles struct {
	title   painter
	rule    painter
	success painter
	warning painter
	failure painter
	muted   painter
}

// plainStyles leaves text untouched.
func plainStyles() styles {
	return styles{title: plain, rule: plain, success: plain, warning: plain, failure: plain, muted: plain}
}

// colorStyles renders through a lipgloss renderer bound to w. The color
// profile is forced so that styling survives pipes when asked for.
func colorStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	paint := func(st lipgloss.Style) painter {
		return func(s string) string { return st.Render(s) }
	}

	return styles{
		title:   paint(r.NewStyle().Bold(true).Foreground(colorTitle)),
		rule:    paint(r.NewStyle().Foreground(colorRule)),
		success: paint(r.NewStyle().Bold(true).Foreground(colorSuccess)),
		warning: paint(r.NewStyle().Foreground(colorWarning)),
		failure: paint(r.NewStyle().Bold(true).Foreground(colorError)),
		muted:   paint(r.NewStyle().Foreground(colorMuted)),
	}
}
