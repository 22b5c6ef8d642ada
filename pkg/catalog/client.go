package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

type ClientOptions struct {
	Timeout   time.Duration
	UserAgent string
	Retries   int
}

// Client retrieves catalog pages over HTTP.
type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRetryCount(opts.Retries)
	client.SetLogger(slogLogger{})
	instrument(client)

	return &Client{http: client}
}

// FetchCatalog downloads the catalog page at url and extracts its courses.
func (c *Client) FetchCatalog(ctx context.Context, url string, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "FetchCatalog")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	res, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return Result{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	body := res.RawBody()
	defer body.Close()

	if res.StatusCode() != http.StatusOK {
		err := fmt.Errorf("unexpected status code %d when fetching %s", res.StatusCode(), url)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	result, err := ParseCatalog(ctx, body, opts)
	for _, m := range result.Malformed {
		m.Page = url
	}
	if err != nil {
		var merr *MalformedGroupError
		if errors.As(err, &merr) {
			merr.Page = url
			return result, merr
		}
		return result, fmt.Errorf("%s: %w", url, err)
	}
	return result, nil
}

// FetchCatalogs fetches each page in turn and concatenates the results in
// argument order. It stops at the first page that fails.
func (c *Client) FetchCatalogs(ctx context.Context, urls []string, opts Options) (Result, error) {
	var all Result
	for _, url := range urls {
		res, err := c.FetchCatalog(ctx, url, opts)
		all.Courses = append(all.Courses, res.Courses...)
		all.Malformed = append(all.Malformed, res.Malformed...)
		all.Groups += res.Groups
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

func instrument(client *resty.Client) {
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		slog.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		slog.DebugContext(
			res.Request.Context(), "request finished",
			"method", res.Request.Method,
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"duration", res.Time(),
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		slog.ErrorContext(req.Context(), "request failed", "method", req.Method, "url", req.URL, "err", err)
	})
}

// slogLogger routes resty's internal messages through slog.
type slogLogger struct{}

func (slogLogger) Errorf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (slogLogger) Warnf(format string, v ...interface{}) {
	slog.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (slogLogger) Debugf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
