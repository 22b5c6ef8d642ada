package render

import (
	"fmt"
	"io"

	"github.com/nmarks413/class-deps/pkg/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Summary writes a one line account of a parse, e.g.
// "3 courses from 4 groups (policy: Skip, trailing group: Drop)".
func Summary(w io.Writer, res catalog.Result, opts catalog.Options, s Styles) {
	title := cases.Title(language.English)
	line := fmt.Sprintf(
		"%d courses from %d groups (policy: %s, trailing group: %s)",
		len(res.Courses), res.Groups,
		title.String(opts.Policy.String()),
		title.String(opts.Trailing.String()),
	)
	fmt.Fprintln(w, s.Label.Render(line))
}
