package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	crossListedClass = "crosslisted"
	instructorClass  = "instructor"
	extraFieldsClass = "extraFields"
	genEdClass       = "gen_ed"
	genEdAltClass    = "genEd"
)

// optionalStart is the index of the first block that may hold an optional
// field. Blocks 3 and 4 carry nothing the record needs.
const optionalStart = 5

// cursor walks a group without ever indexing past its end.
type cursor struct {
	group Group
	pos   int
}

func (c *cursor) peek() (Block, bool) {
	if c.pos >= len(c.group) {
		return nil, false
	}
	return c.group[c.pos], true
}

func (c *cursor) advance(n int) {
	c.pos = min(c.pos+n, len(c.group))
}

// at reports whether the current block carries one of the classes.
func (c *cursor) at(classes ...string) bool {
	b, ok := c.peek()
	if !ok {
		return false
	}
	for _, class := range classes {
		if b.HasClass(class) {
			return true
		}
	}
	return false
}

// BuildCourse turns one group into a course record. It fails with a
// *MalformedGroupError when a mandatory field is missing or unparsable.
func BuildCourse(group Group) (Course, error) {
	if len(group) < 3 {
		return Course{}, malformed(group, fmt.Sprintf("expected at least 3 blocks, got %d", len(group)), nil)
	}

	header := group[0].TextFragments()
	if len(header) < 3 {
		return Course{}, malformed(group, "header is missing department, number or title", nil)
	}
	department, token, ok := strings.Cut(strings.TrimSpace(header[1]), " ")
	if !ok {
		return Course{}, malformed(group, fmt.Sprintf("header %q has no department/number separator", header[1]), nil)
	}
	number, err := ParseCourseNumber(strings.TrimSpace(token))
	if err != nil {
		return Course{}, malformed(group, "course number", err)
	}

	credits, err := parseCredits(group[2])
	if err != nil {
		return Course{}, malformed(group, "credits", err)
	}

	course := Course{
		Department:  department,
		Number:      number,
		Title:       strings.TrimSpace(header[2]),
		Description: normalizeSpace(group[1].Text()),
		Credits:     credits,
	}

	c := &cursor{group: group, pos: optionalStart}

	if c.at(crossListedClass) {
		// the block after the notice is a fixed label
		if c.pos+2 < len(group) {
			course.CrossListed = strings.TrimSpace(group[c.pos+2].Text())
		}
		c.advance(3)
	}

	if c.at(instructorClass) {
		c.advance(1)
	}

	if c.at(extraFieldsClass) {
		b, _ := c.peek()
		course.Requirements = parseRequirements(b.Text())
		c.advance(1)
	}

	if c.at(genEdClass, genEdAltClass) {
		b, _ := c.peek()
		fragments := b.TextFragments()
		if len(fragments) > 2 {
			if g, ok := ParseGenEd(strings.TrimSpace(fragments[2])); ok {
				course.GenEd = g
			}
		}
		c.advance(1)
	}

	return course, nil
}

func parseCredits(b Block) (uint32, error) {
	fragments := b.TextFragments()
	if len(fragments) < 3 {
		return 0, fmt.Errorf("no credits data")
	}
	n, err := strconv.ParseUint(strings.TrimSpace(fragments[2]), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("credits data not a number: %w", err)
	}
	return uint32(n), nil
}

// parseRequirements reads "Label: a; b; c". A block without a colon has no
// requirements.
func parseRequirements(text string) []string {
	_, reqs, ok := strings.Cut(text, ":")
	if !ok {
		return nil
	}
	parts := strings.Split(reqs, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
