package catalog

import (
	"regexp"
	"strings"
)

// Block is one direct child element of the course list. The engine only
// needs class membership and visible text from it.
type Block interface {
	// HasClass reports class membership, ASCII case-insensitively.
	HasClass(name string) bool
	// TextFragments returns every descendant text node in document order.
	TextFragments() []string
	// Text returns the fragments concatenated.
	Text() string
}

// Group is the run of blocks belonging to a single course. The first block
// carries the course-name marker.
type Group []Block

// Text joins the visible text of every block, whitespace-normalized. It is
// only used for diagnostics.
func (g Group) Text() string {
	parts := make([]string, 0, len(g))
	for _, b := range g {
		if t := normalizeSpace(b.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " | ")
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

func normalizeSpace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
