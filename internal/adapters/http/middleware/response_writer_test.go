package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantBytes   int64
		wantStarted bool
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "first final status is kept",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusConflict)
				w.WriteHeader(http.StatusOK)
			},
			wantStatus:  http.StatusConflict,
			wantStarted: true,
		},
		{
			name: "informational header does not start the response",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusEarlyHints)
				w.WriteHeader(http.StatusCreated)
			},
			wantStatus:  http.StatusCreated,
			wantStarted: true,
		},
		{
			name: "body counts every write",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"tags":`))
				_, _ = w.Write([]byte(`["go"]}`))
			},
			wantStatus:  http.StatusOK,
			wantBytes:   15,
			wantStarted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := newStatusRecorder(rec)
			tt.write(sr)

			if got := sr.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", got, tt.wantStatus)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if sr.Started() != tt.wantStarted {
				t.Errorf("Started() = %v, want %v", sr.Started(), tt.wantStarted)
			}
			if sr.Unwrap() != rec {
				t.Error("Unwrap() did not return the underlying writer")
			}
		})
	}
}
