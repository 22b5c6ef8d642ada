package catalog

import (
	"strings"
)

type fakeBlock struct {
	classes   []string
	fragments []string
}

func (b fakeBlock) HasClass(name string) bool {
	for _, c := range b.classes {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

func (b fakeBlock) TextFragments() []string { return b.fragments }
func (b fakeBlock) Text() string            { return strings.Join(b.fragments, "") }

func block(class string, fragments ...string) fakeBlock {
	var classes []string
	if class != "" {
		classes = strings.Fields(class)
	}
	return fakeBlock{classes: classes, fragments: fragments}
}

func header(id, title string) fakeBlock {
	return block("course-name", "\n", id, title)
}

func credits(n string) fakeBlock {
	return block("sc-credithours", "\n", "Credits", n)
}

func filler() fakeBlock {
	return block("sc-filler", "-")
}

// baseGroup is the five leading blocks every course starts with.
func baseGroup(id, title string) Group {
	return Group{
		header(id, title),
		block("desc", "  Limits, derivatives\n  and integrals. "),
		credits("5"),
		filler(),
		filler(),
	}
}
