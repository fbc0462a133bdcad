// Package acl implements the Anti-Corruption Layer between the university
// web services and the domain. Each university has a client implementing
// ports.UniversityClient; payload translation lives in subpackages (acl/ruz,
// acl/rasp, acl/site) and shared error mapping lives here.
package acl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

const (
	maxErrorBodySize = 4 << 10
	// maxExcerptRunes bounds the body text carried into error messages.
	maxExcerptRunes = 200
)

// TranslateHTTPError maps an upstream error response to a domain error.
// University sites answer with HTML error pages, so only a short plain-text
// excerpt of the body is kept for context.
func TranslateHTTPError(resp *http.Response) error {
	detail := http.StatusText(resp.StatusCode)
	if excerpt := readExcerpt(resp); excerpt != "" {
		detail += ": " + excerpt
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// TranslateTransportError marks network failures and rejections by the
// circuit breaker as domain.ErrUnavailable. Context cancellation is returned
// unchanged.
func TranslateTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errors.Join(domain.ErrUnavailable, err)
}

// readExcerpt returns the start of a plain-text or JSON error body.
func readExcerpt(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "text/plain") && !strings.Contains(ct, "json") {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}
	excerpt := strings.Join(strings.Fields(string(body)), " ")
	if r := []rune(excerpt); len(r) > maxExcerptRunes {
		excerpt = string(r[:maxExcerptRunes]) + "..."
	}
	return excerpt
}
