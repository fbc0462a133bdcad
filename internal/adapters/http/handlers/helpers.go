package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

// dateLayout is the format of date query parameters.
const dateLayout = time.DateOnly

// pathParam extracts a non-blank chi URL parameter.
func pathParam(r *http.Request, param string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, param))
	if v == "" {
		return "", domain.NewValidationError(param, domain.MsgRequired)
	}
	return v, nil
}

// errInvalidQuery reports a malformed query parameter.
func errInvalidQuery(param string, err error) error {
	return domain.NewValidationError(param, err.Error())
}

// actingUser returns the id set by middleware.UserID, or "" when anonymous.
func actingUser(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// queryDate parses a YYYY-MM-DD query parameter, returning def when absent.
func queryDate(r *http.Request, param string, def time.Time) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		return def, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(param, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// queryList splits comma-separated and repeated query values, dropping blanks.
func queryList(r *http.Request, param string) []string {
	var out []string
	for _, v := range r.URL.Query()[param] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
