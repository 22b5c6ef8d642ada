package search

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/nmarks413/class-deps/pkg/catalog"
)

// Filter narrows a course list. Zero values match everything.
type Filter struct {
	Department      string
	GenEd           string
	MinCredits      uint32
	HasRequirements bool
	CrossListedOnly bool
}

// Apply returns the courses that satisfy every set field, keeping their order.
func (f Filter) Apply(courses []catalog.Course) []catalog.Course {
	var out []catalog.Course
	for _, c := range courses {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Filter) Match(c catalog.Course) bool {
	if f.Department != "" && !strings.EqualFold(f.Department, c.Department) {
		return false
	}
	if f.GenEd != "" {
		if c.GenEd == nil {
			return false
		}
		// "PE" matches the whole family
		code := strings.ToUpper(f.GenEd)
		if c.GenEd.Code() != code && !strings.HasPrefix(c.GenEd.Code(), code+"-") {
			return false
		}
	}
	if c.Credits < f.MinCredits {
		return false
	}
	if f.HasRequirements && len(c.Requirements) == 0 {
		return false
	}
	if f.CrossListedOnly && c.CrossListed == "" {
		return false
	}
	return true
}

// DefaultThreshold is the minimum Jaro-Winkler similarity for a fuzzy hit.
const DefaultThreshold = 0.8

type Match struct {
	Course catalog.Course
	Score  float64
}

// Search ranks courses against a free text query. An exact identifier match
// ("MATH 19A") scores 1, a department or identifier prefix scores 0.99, and
// everything else is scored by the best Jaro-Winkler similarity between the
// query and the identifier, the title or any single title word.
func Search(courses []catalog.Course, query string, threshold float64) []Match {
	q := normalize(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for _, c := range courses {
		score := scoreCourse(c, q)
		if score >= threshold {
			matches = append(matches, Match{Course: c, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func scoreCourse(c catalog.Course, q string) float64 {
	id := normalize(c.ID())
	if id == q {
		return 1
	}
	if strings.HasPrefix(id, q) {
		return 0.99
	}

	title := normalize(c.Title)
	if strings.Contains(title, q) {
		return 0.98
	}

	best := max(matchr.JaroWinkler(q, id, false), matchr.JaroWinkler(q, title, false))
	for _, word := range strings.Fields(title) {
		best = max(best, matchr.JaroWinkler(q, word, false))
	}
	return best
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
