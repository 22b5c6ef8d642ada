package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("classdeps/catalog")

// Policy decides how a malformed course group affects the whole page.
type Policy int

const (
	// PolicySkip drops the malformed group, records it in Result.Malformed
	// and keeps going.
	PolicySkip Policy = iota
	// PolicyFailFast aborts on the first malformed group.
	PolicyFailFast
)

func (p Policy) String() string {
	if p == PolicyFailFast {
		return "fail-fast"
	}
	return "skip"
}

// ParsePolicy accepts "skip" or "fail-fast".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return PolicySkip, nil
	case "fail-fast", "failfast", "abort":
		return PolicyFailFast, nil
	}
	return PolicySkip, fmt.Errorf("unknown malformed group policy %q (expected skip or fail-fast)", s)
}

type Options struct {
	Policy   Policy
	Trailing TrailingPolicy
	// Workers bounds how many groups are built concurrently. Values below 2
	// build sequentially. Output order is the same either way.
	Workers int
}

type Result struct {
	Courses []Course
	// Malformed holds the groups skipped under PolicySkip, in page order.
	Malformed []*MalformedGroupError
	// Groups is the number of groups the page was segmented into.
	Groups int
}

// ParseCatalog reads a catalog page and extracts its courses.
func ParseCatalog(ctx context.Context, r io.Reader, opts Options) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse catalog html: %w", err)
	}
	return ParseDocument(ctx, doc, opts)
}

// ParseDocument extracts the courses of an already parsed catalog page.
func ParseDocument(ctx context.Context, doc *goquery.Document, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "ParseDocument")
	defer span.End()

	list, err := CourseList(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "course list not found")
		return Result{}, err
	}

	blocks := Children(list)
	groups := Segment(blocks, opts.Trailing)
	span.SetAttributes(
		attribute.Int("blocks", len(blocks)),
		attribute.Int("groups", len(groups)),
		attribute.String("trailing", opts.Trailing.String()),
	)
	slog.DebugContext(ctx, "segmented course list", "blocks", len(blocks), "groups", len(groups))

	res, err := BuildAll(ctx, groups, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to build courses")
	}
	return res, err
}

type built struct {
	course Course
	err    error
}

// BuildAll builds every group, in order, applying the configured policy to
// malformed groups.
func BuildAll(ctx context.Context, groups []Group, opts Options) (Result, error) {
	results := make([]built, len(groups))

	if opts.Workers > 1 && len(groups) > 1 {
		eg, egctx := errgroup.WithContext(ctx)
		eg.SetLimit(opts.Workers)
		for i, g := range groups {
			eg.Go(func() error {
				if err := egctx.Err(); err != nil {
					return err
				}
				course, err := BuildCourse(g)
				results[i] = built{course: course, err: err}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		for i, g := range groups {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			course, err := BuildCourse(g)
			results[i] = built{course: course, err: err}
			if err != nil && opts.Policy == PolicyFailFast {
				break
			}
		}
	}

	res := Result{
		Courses: make([]Course, 0, len(groups)),
		Groups:  len(groups),
	}
	for i, b := range results {
		if b.err == nil {
			res.Courses = append(res.Courses, b.course)
			continue
		}

		merr, ok := b.err.(*MalformedGroupError)
		if !ok {
			return res, b.err
		}
		merr.Index = i

		if opts.Policy == PolicyFailFast {
			slog.ErrorContext(ctx, "aborting on malformed course group", "index", i, "reason", merr.Reason, "text", merr.Text)
			return res, merr
		}
		slog.WarnContext(ctx, "skipping malformed course group", "index", i, "reason", merr.Reason)
		res.Malformed = append(res.Malformed, merr)
	}

	return res, nil
}
