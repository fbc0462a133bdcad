package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/net/html"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/clients/acl/site"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/httpclient"
)

// maxBodySize limits how much of an upstream page we read.
const maxBodySize = 8 << 20 // 8 MB

// Requester centralizes the GET lifecycle for ACL clients: URL resolution,
// execution via httpclient.Client, response body cleanup, status code
// validation, error translation and decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// GetJSON fetches path and decodes the JSON body into out.
func (r *Requester) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := r.Get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

// GetHTML fetches path and parses the body as HTML.
func (r *Requester) GetHTML(ctx context.Context, path string, query url.Values) (*html.Node, error) {
	resp, err := r.do(ctx, path, query)
	if err != nil {
		return nil, err
	}
	defer r.closeBody(ctx, resp)

	return site.Parse(io.LimitReader(resp.Body, maxBodySize))
}

// Get fetches path and returns the raw body. Absolute URLs are fetched as-is.
func (r *Requester) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := r.do(ctx, path, query)
	if err != nil {
		return nil, err
	}
	defer r.closeBody(ctx, resp)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", path, err)
	}
	return body, nil
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Name returns the upstream identifier of the underlying HTTP client.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck reports the underlying client's circuit breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// do sends a GET and returns a response with status 200 and an open body.
func (r *Requester) do(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target, err := r.client.ResolveURL(path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			return nil, TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("upstream", r.client.Name()),
			slog.String("url", target),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("GET %s: %w", req.URL.Path, TranslateTransportError(err))
	}

	if resp.StatusCode != http.StatusOK {
		defer r.closeBody(ctx, resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("upstream", r.client.Name()),
			slog.String("url", target),
			slog.Int("status", resp.StatusCode),
		)
		return nil, TranslateHTTPError(resp)
	}
	return resp, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
