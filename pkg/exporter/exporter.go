package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nmarks413/class-deps/pkg/catalog"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "json" or "csv".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (expected json or csv)", s)
}

// FormatFromPath guesses the format from a file extension, defaulting to json.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// Export writes the courses to w in the given format.
func Export(courses []catalog.Course, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		return GenerateJSON(courses, w)
	case FormatCSV:
		return GenerateCSV(courses, w)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// GenerateJSON writes the courses as an indented JSON array.
func GenerateJSON(courses []catalog.Course, w io.Writer) error {
	if courses == nil {
		courses = []catalog.Course{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(courses); err != nil {
		return fmt.Errorf("failed to encode courses: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"department", "course_number", "title", "description",
	"credits", "requirements", "gen_ed", "cross_listed",
}

// GenerateCSV writes one row per course. Requirements are joined with "; ",
// the same separator the catalog uses.
func GenerateCSV(courses []catalog.Course, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, c := range courses {
		genEd := ""
		if c.GenEd != nil {
			genEd = c.GenEd.Code()
		}
		row := []string{
			c.Department,
			c.Number.String(),
			c.Title,
			c.Description,
			strconv.FormatUint(uint64(c.Credits), 10),
			strings.Join(c.Requirements, "; "),
			genEd,
			c.CrossListed,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.ID(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}
