package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected field of a validation problem.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// userMessager is implemented by errors that carry text meant for the end
// user, such as failed project mutations.
type userMessager interface {
	UserMessage() string
}

// internalDetail replaces the detail of unclassified errors, whose text may
// name hosts, files or SQL.
const internalDetail = "The server could not complete the request."

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// NewErrorResponse builds the problem document for err, using the request URI
// as the instance.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var um userMessager
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &um):
		resp.Detail = um.UserMessage()
	case status == http.StatusInternalServerError:
		resp.Detail = internalDetail
	case status == http.StatusBadRequest && errors.As(err, &verr):
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err with its status.
// The cause of a 500 is logged, since the client does not see it.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "unclassified error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

// domainErrorToStatus picks the response status for err. A failed mutation
// is an upstream failure whatever its cause.
func domainErrorToStatus(err error) int {
	var um userMessager
	if errors.As(err, &um) {
		return http.StatusBadGateway
	}
	for _, m := range statusBySentinel {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// validationFieldsToDetails lists the fields sorted by location.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
