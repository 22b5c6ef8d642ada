package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCourseNumber(t *testing.T) {
	tests := []struct {
		token    string
		expected CourseNumber
	}{
		{"101", CourseNumber{Number: 101}},
		{"101L", CourseNumber{Number: 101, Suffix: 'L'}},
		{"19A", CourseNumber{Number: 19, Suffix: 'A'}},
		{"0", CourseNumber{}},
	}

	for _, test := range tests {
		got, err := ParseCourseNumber(test.token)
		if err != nil {
			t.Errorf("ParseCourseNumber(%q) failed: %v", test.token, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseCourseNumber(%q) = %+v, expected %+v", test.token, got, test.expected)
		}
		if got.String() != test.token {
			t.Errorf("String() = %q, expected %q", got.String(), test.token)
		}
	}

	for _, bad := range []string{"", "L", "1.5", "-3", "12LL"} {
		if _, err := ParseCourseNumber(bad); err == nil {
			t.Errorf("expected ParseCourseNumber(%q) to fail", bad)
		}
	}
}

func TestCourseID(t *testing.T) {
	c := Course{Department: "CSE", Number: CourseNumber{Number: 12, Suffix: 'L'}}
	if c.ID() != "CSE 12L" {
		t.Errorf("expected CSE 12L, got %s", c.ID())
	}
}

func TestCourseJSON(t *testing.T) {
	course := Course{
		Department:   "MATH",
		Number:       CourseNumber{Number: 19, Suffix: 'A'},
		Title:        "Calculus",
		Description:  "Limits.",
		Credits:      5,
		Requirements: []string{"MATH 3"},
		GenEd:        PR{Area: PRCollaborative},
		CrossListed:  "AM 11A",
	}

	data, err := json.Marshal(course)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal into map failed: %v", err)
	}
	if fields["course_number"] != "19A" {
		t.Errorf("expected course_number 19A, got %v", fields["course_number"])
	}
	if fields["gen_ed"] != "PR-C" {
		t.Errorf("expected gen_ed PR-C, got %v", fields["gen_ed"])
	}

	var decoded Course
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(course, decoded); diff != "" {
		t.Errorf("decoded course mismatch (-want +got):\n%s", diff)
	}
}

func TestCourseJSONOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(Course{Department: "AM", Number: CourseNumber{Number: 3}, Title: "Precalculus"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal into map failed: %v", err)
	}
	for _, key := range []string{"requirements", "gen_ed", "cross_listed"} {
		if _, ok := fields[key]; ok {
			t.Errorf("expected %s to be omitted, got %s", key, data)
		}
	}
}
