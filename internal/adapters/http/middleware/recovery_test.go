package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/middleware"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantLogged string
	}{
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "string panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic("nil roster") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"title":"Internal Server Error"`,
			wantLogged: "nil roster",
		},
		{
			name:       "error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(errors.New("seed file vanished")) },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"status":500`,
			wantLogged: "seed file vanished",
		},
		{
			name: "panic after the response started",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
			wantLogged: "late",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Recovery(jsonLogger(&buf))(middleware.RequestID()(tt.handler))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/p1", http.NoBody)
			req.Header.Set(middleware.HeaderRequestID, "req-crash")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}

			if tt.wantLogged == "" {
				if buf.Len() != 0 {
					t.Errorf("unexpected log output: %s", buf.String())
				}
				return
			}
			entry := findLog(t, logLines(t, &buf), "panic recovered")
			if entry["panic"] != tt.wantLogged {
				t.Errorf("panic = %v, want %q", entry["panic"], tt.wantLogged)
			}
			if entry["request_id"] != "req-crash" {
				t.Errorf("request_id = %v, want req-crash", entry["request_id"])
			}
			if stack, _ := entry["stack"].(string); !strings.Contains(stack, "goroutine") {
				t.Error("log entry has no stack trace")
			}
		})
	}
}

func TestRecovery_PassesAbortThrough(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(jsonLogger(new(bytes.Buffer)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	t.Error("ServeHTTP returned normally")
}
