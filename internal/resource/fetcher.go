package resource

import (
	"context"
	"log"
	"net/http"
	"time"

	"widgetlab/internal/jsonutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "widgetlab/resource"

// HTTPFetcher fetches the user record with a single GET to DefaultUserURL.
// It never retries and sets no timeout of its own.
type HTTPFetcher struct {
	client *http.Client
	url    string
	tracer oteltrace.Tracer
}

// Ensure HTTPFetcher implements Fetcher.
var _ Fetcher = (*HTTPFetcher)(nil)

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(f *HTTPFetcher) { f.tracer = tp.Tracer(tracerName) }
}

// withURL points the fetcher at a test server.
func withURL(u string) Option {
	return func(f *HTTPFetcher) { f.url = u }
}

// NewHTTPFetcher creates a fetcher for DefaultUserURL.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client: http.DefaultClient,
		url:    DefaultUserURL,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the address the fetcher requests.
func (f *HTTPFetcher) URL() string { return f.url }

// FetchUser issues the GET and decodes the body. Every failure is returned
// as a *FetchError.
func (f *HTTPFetcher) FetchUser(ctx context.Context) (User, error) {
	ctx, span := f.tracer.Start(ctx, "fetch user",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", f.url),
		),
	)
	defer span.End()

	start := time.Now()
	u, err := f.fetch(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if fe, ok := err.(*FetchError); ok {
			log.Printf("resource: fetch failed after %s: %s", time.Since(start).Round(time.Millisecond), fe.Detail())
		}
		return User{}, err
	}
	span.SetStatus(codes.Ok, "")
	return u, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, span oteltrace.Span) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return User{}, &FetchError{Op: "request", URL: f.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return User{}, &FetchError{Op: "request", URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return User{}, &FetchError{Op: "status", URL: f.url, Err: statusError(resp.StatusCode, resp.Status)}
	}

	u, raw, err := jsonutil.ReadObject[User](resp.Body, "decode user")
	if err != nil {
		return User{}, &FetchError{Op: "decode", URL: f.url, Err: err}
	}
	if err := jsonutil.RequireStrings(raw, "decode user", "name", "email"); err != nil {
		return User{}, &FetchError{Op: "decode", URL: f.url, Err: err}
	}
	span.SetAttributes(attribute.String("widgetlab.user.id", jsonutil.ToString(raw["id"])))
	return u, nil
}
