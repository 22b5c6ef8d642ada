package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nmarks413/class-deps/pkg/catalog"
)

// Table writes one row per course.
func Table(w io.Writer, courses []catalog.Course) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Course", "Title", "Credits", "Gen Ed", "Cross-listed"})

	for _, c := range courses {
		t.AppendRow(table.Row{c.ID(), c.Title, c.Credits, genEdCode(c.GenEd), c.CrossListed})
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d courses", len(courses))})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func genEdCode(g catalog.GenEd) string {
	if g == nil {
		return ""
	}
	return g.Code()
}
