package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nmarks413/class-deps/pkg/catalog"
)

func testCourses() []catalog.Course {
	return []catalog.Course{
		{
			Department:   "MATH",
			Number:       catalog.CourseNumber{Number: 19, Suffix: 'A'},
			Title:        "Calculus for Science, Engineering, and Mathematics",
			Description:  "The limit of a function, calculating limits, continuity, the derivative and its interpretations, and applications to optimization problems.",
			Credits:      5,
			Requirements: []string{"MATH 3", "AM 3"},
			GenEd:        catalog.MF,
			CrossListed:  "AM 11A",
		},
		{Department: "MATH", Number: catalog.CourseNumber{Number: 21}, Title: "Linear Algebra", Credits: 5},
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, testCourses())
	output := buf.String()

	for _, want := range []string{"MATH 19A", "Linear Algebra", "MF", "AM 11A"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected table to contain %q, got:\n%s", want, output)
		}
	}
	// go-pretty upper-cases the footer
	if !strings.Contains(strings.ToUpper(output), "2 COURSES") {
		t.Errorf("expected a course count footer, got:\n%s", output)
	}
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	Detail(&buf, testCourses(), NewStyles(""))
	output := buf.String()

	for _, want := range []string{"MATH 19A", "Mathematical and Formal Reasoning", "• MATH 3", "• AM 3", "Cross-listed:", "optimization"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected detail view to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Count(output, "Requirements:") != 1 {
		t.Errorf("expected exactly one requirements section, got:\n%s", output)
	}
}

func TestDiagnostics(t *testing.T) {
	malformed := []*catalog.MalformedGroupError{
		{Index: 4, Reason: "credits", Text: "MATH 99 | Broken | Credits"},
	}

	var buf bytes.Buffer
	Diagnostics(&buf, malformed, false, NewStyles(""))
	if !strings.Contains(buf.String(), "group 4: credits") {
		t.Errorf("expected diagnostics to name the group, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "MATH 99") {
		t.Errorf("expected raw text to be hidden without verbose, got:\n%s", buf.String())
	}

	buf.Reset()
	Diagnostics(&buf, malformed, true, NewStyles(""))
	if !strings.Contains(buf.String(), "MATH 99 | Broken | Credits") {
		t.Errorf("expected raw group text under verbose, got:\n%s", buf.String())
	}

	buf.Reset()
	malformed = append(malformed, &catalog.MalformedGroupError{Index: 2, Page: "https://example.edu/am/", Reason: "course number"})
	Diagnostics(&buf, malformed, false, NewStyles(""))
	if !strings.Contains(buf.String(), "group 2 (https://example.edu/am/): course number") {
		t.Errorf("expected diagnostics to name the page of the group, got:\n%s", buf.String())
	}

	buf.Reset()
	Diagnostics(&buf, nil, true, NewStyles(""))
	if buf.Len() != 0 {
		t.Errorf("expected no output without malformed groups, got:\n%s", buf.String())
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	res := catalog.Result{Courses: testCourses(), Groups: 3}
	Summary(&buf, res, catalog.Options{Policy: catalog.PolicyFailFast}, NewStyles(""))

	output := buf.String()
	if !strings.Contains(output, "2 courses from 3 groups") || !strings.Contains(output, "policy: Fail") || !strings.Contains(output, "trailing group: Drop") {
		t.Errorf("unexpected summary: %s", buf.String())
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 9, "> ")
	if got != "one two\n> three\n> four" {
		t.Errorf("unexpected wrap result %q", got)
	}
}
