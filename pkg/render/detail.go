package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nmarks413/class-deps/pkg/catalog"
)

// Styles holds the lipgloss styles for the detailed course view.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Warn  lipgloss.Style
}

// NewStyles builds the styles around an accent color (a lipgloss color string).
func NewStyles(accent string) Styles {
	if accent == "" {
		accent = "99"
	}
	return Styles{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Detail writes a card for every course.
func Detail(w io.Writer, courses []catalog.Course, s Styles) {
	for _, c := range courses {
		fmt.Fprintln(w, s.Title.Render(fmt.Sprintf("%s  %s", c.ID(), c.Title)))
		fmt.Fprintf(w, "  %s %d\n", s.Label.Render("Credits:"), c.Credits)

		if c.GenEd != nil {
			fmt.Fprintf(w, "  %s %s (%s)\n", s.Label.Render("Gen Ed:"), c.GenEd.Code(), c.GenEd.Name())
		}
		if c.CrossListed != "" {
			fmt.Fprintf(w, "  %s %s\n", s.Label.Render("Cross-listed:"), c.CrossListed)
		}
		if len(c.Requirements) > 0 {
			fmt.Fprintf(w, "  %s\n", s.Label.Render("Requirements:"))
			for _, r := range c.Requirements {
				fmt.Fprintf(w, "    • %s\n", r)
			}
		}
		if c.Description != "" {
			fmt.Fprintf(w, "  %s\n", s.Muted.Render(wrap(c.Description, 76, "  ")))
		}
		fmt.Fprintln(w)
	}
}

// Diagnostics summarizes the groups skipped while parsing. With verbose set
// the raw text of each group is printed as well.
func Diagnostics(w io.Writer, malformed []*catalog.MalformedGroupError, verbose bool, s Styles) {
	if len(malformed) == 0 {
		return
	}

	fmt.Fprintln(w, s.Warn.Render(fmt.Sprintf("%d course group(s) could not be parsed", len(malformed))))
	for _, m := range malformed {
		if m.Page != "" {
			fmt.Fprintf(w, "  group %d (%s): %s\n", m.Index, m.Page, m.Reason)
		} else {
			fmt.Fprintf(w, "  group %d: %s\n", m.Index, m.Reason)
		}
		if verbose {
			fmt.Fprintf(w, "    %s\n", s.Muted.Render(m.Text))
		}
	}
}

func wrap(text string, width int, indent string) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n"+indent)
}
