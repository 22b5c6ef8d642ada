package catalog

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseFixture(t testing.TB, opts Options) (Result, error) {
	t.Helper()
	file, err := os.Open("testdata/courselist.html")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer file.Close()
	return ParseCatalog(context.Background(), file, opts)
}

func TestParseCatalog(t *testing.T) {
	res, err := parseFixture(t, Options{})
	require.NoError(t, err)

	require.Equal(t, 4, res.Groups)
	require.Len(t, res.Courses, 3)
	require.Len(t, res.Malformed, 1)

	expected := []Course{
		{
			Department:   "MATH",
			Number:       CourseNumber{Number: 3},
			Title:        "Precalculus",
			Description:  "Structured to prepare students for calculus. Topics include functions, graphs, and trigonometry.",
			Credits:      5,
			Requirements: []string{"Enrollment by placement exam", "MATH 2"},
		},
		{
			Department:   "MATH",
			Number:       CourseNumber{Number: 19, Suffix: 'A'},
			Title:        "Calculus for Science, Engineering, and Mathematics",
			Description:  "The limit of a function, calculating limits, continuity.",
			Credits:      5,
			Requirements: []string{"MATH 3", "AM 3"},
			GenEd:        MF,
			CrossListed:  "AM 11A",
		},
		{
			Department:  "MATH",
			Number:      CourseNumber{Number: 21},
			Title:       "Linear Algebra",
			Description: "Systems of linear equations.",
			Credits:     5,
		},
	}
	if diff := cmp.Diff(expected, res.Courses); diff != "" {
		t.Errorf("courses mismatch (-want +got):\n%s", diff)
	}

	merr := res.Malformed[0]
	require.Equal(t, 2, merr.Index)
	require.Contains(t, merr.Text, "MATHX")
}

func TestParseCatalogFlushTrailing(t *testing.T) {
	res, err := parseFixture(t, Options{Trailing: FlushTrailing})
	require.NoError(t, err)

	require.Equal(t, 5, res.Groups)
	require.Len(t, res.Courses, 4)
	require.Equal(t, "MATH 100", res.Courses[3].ID())
}

func TestParseCatalogFailFast(t *testing.T) {
	res, err := parseFixture(t, Options{Policy: PolicyFailFast})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedGroup))

	var merr *MalformedGroupError
	require.True(t, errors.As(err, &merr))
	require.Equal(t, 2, merr.Index)
	require.Len(t, res.Courses, 2)
}

func TestParseCatalogParallelMatchesSequential(t *testing.T) {
	sequential, err := parseFixture(t, Options{Trailing: FlushTrailing})
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8} {
		parallel, err := parseFixture(t, Options{Trailing: FlushTrailing, Workers: workers})
		require.NoError(t, err)
		if diff := cmp.Diff(sequential.Courses, parallel.Courses); diff != "" {
			t.Errorf("workers=%d changed the output (-sequential +parallel):\n%s", workers, diff)
		}
		require.Equal(t, len(sequential.Malformed), len(parallel.Malformed))
	}

	_, err = parseFixture(t, Options{Policy: PolicyFailFast, Workers: 4})
	var merr *MalformedGroupError
	require.True(t, errors.As(err, &merr))
	require.Equal(t, 2, merr.Index)
}

func TestParseCatalogNoCourseList(t *testing.T) {
	_, err := ParseCatalog(context.Background(), strings.NewReader("<html><body><div>nothing</div></body></html>"), Options{})
	require.ErrorIs(t, err, ErrNoCourseList)
	require.False(t, errors.Is(err, ErrMalformedGroup))
}

func TestParseCatalogEmptyList(t *testing.T) {
	res, err := ParseCatalog(context.Background(), strings.NewReader(`<div class="courselist"><p>No courses</p></div>`), Options{})
	require.NoError(t, err)
	require.Empty(t, res.Courses)
	require.Zero(t, res.Groups)
}

func TestBuildAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	groups := []Group{baseGroup("MATH 1", "A"), baseGroup("MATH 2", "B")}
	_, err := BuildAll(ctx, groups, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("fail-fast")
	require.NoError(t, err)
	require.Equal(t, PolicyFailFast, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	require.Equal(t, PolicySkip, p)

	_, err = ParsePolicy("retry")
	require.Error(t, err)
}

func TestNodeBlock(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div class="courselist"><div class="Foo  genEd"> <b>a</b>b</div><p>c</p></div>`,
	))
	require.NoError(t, err)

	list, err := CourseList(doc)
	require.NoError(t, err)
	blocks := Children(list)
	require.Len(t, blocks, 2)

	b := blocks[0]
	require.True(t, b.HasClass("GENED"))
	require.True(t, b.HasClass("foo"))
	require.False(t, b.HasClass("gen_ed"))
	require.Equal(t, []string{" ", "a", "b"}, b.TextFragments())
	require.Equal(t, " ab", b.Text())

	require.False(t, blocks[1].HasClass("foo"))
	require.Equal(t, "c", blocks[1].Text())
}
