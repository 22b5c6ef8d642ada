package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CourseNumber is a catalog number such as "19" or "101L".
type CourseNumber struct {
	Number uint32
	// Suffix is zero when the number has no trailing letter.
	Suffix rune
}

func (n CourseNumber) HasSuffix() bool {
	return n.Suffix != 0
}

func (n CourseNumber) String() string {
	if n.HasSuffix() {
		return fmt.Sprintf("%d%c", n.Number, n.Suffix)
	}
	return strconv.FormatUint(uint64(n.Number), 10)
}

// ParseCourseNumber splits a raw token like "101L" into its integer and
// optional alphabetic suffix.
func ParseCourseNumber(token string) (CourseNumber, error) {
	if token == "" {
		return CourseNumber{}, fmt.Errorf("empty course number")
	}

	digits := token
	var suffix rune
	last, size := utf8.DecodeLastRuneInString(token)
	if unicode.IsLetter(last) {
		digits = token[:len(token)-size]
		suffix = last
	}

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return CourseNumber{}, fmt.Errorf("invalid course number %q: %w", token, err)
	}
	return CourseNumber{Number: uint32(n), Suffix: suffix}, nil
}

// Course is a single course record extracted from the catalog.
type Course struct {
	Department  string
	Number      CourseNumber
	Title       string
	Description string
	Credits     uint32
	// Requirements is nil when the course has no requirements block.
	Requirements []string
	// GenEd is nil when the course has no (recognized) general education code.
	GenEd GenEd
	// CrossListed is empty when the course is not cross-listed.
	CrossListed string
}

// ID returns the catalog identifier, e.g. "MATH 19A".
func (c Course) ID() string {
	return c.Department + " " + c.Number.String()
}

type courseJSON struct {
	Department   string   `json:"department"`
	CourseNumber string   `json:"course_number"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Credits      uint32   `json:"credits"`
	Requirements []string `json:"requirements,omitempty"`
	GenEd        string   `json:"gen_ed,omitempty"`
	CrossListed  string   `json:"cross_listed,omitempty"`
}

func (c Course) MarshalJSON() ([]byte, error) {
	out := courseJSON{
		Department:   c.Department,
		CourseNumber: c.Number.String(),
		Title:        c.Title,
		Description:  c.Description,
		Credits:      c.Credits,
		Requirements: c.Requirements,
		CrossListed:  c.CrossListed,
	}
	if c.GenEd != nil {
		out.GenEd = c.GenEd.Code()
	}
	return json.Marshal(out)
}

func (c *Course) UnmarshalJSON(data []byte) error {
	var in courseJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	number, err := ParseCourseNumber(strings.TrimSpace(in.CourseNumber))
	if err != nil {
		return err
	}

	*c = Course{
		Department:   in.Department,
		Number:       number,
		Title:        in.Title,
		Description:  in.Description,
		Credits:      in.Credits,
		Requirements: in.Requirements,
		CrossListed:  in.CrossListed,
	}
	if in.GenEd != "" {
		g, ok := ParseGenEd(in.GenEd)
		if !ok {
			return fmt.Errorf("unknown gen ed code %q", in.GenEd)
		}
		c.GenEd = g
	}
	return nil
}
