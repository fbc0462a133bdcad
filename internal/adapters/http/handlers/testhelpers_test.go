package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

const testUserID = "student-1"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser marks r as sent by userID, as middleware.UserID would.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), userID))
}

func validProject() project.Project {
	return project.Project{
		ID:          "p-1",
		Title:       "Hackathon team",
		Description: "Build a study bot",
		Tags:        []string{"ai"},
		Leader:      project.UserSnapshot{ID: testUserID, FullName: "Анна Петрова", Course: 3},
		Roles: []project.Role{
			{ID: "be", Name: "Backend", RequiredCount: 2},
		},
		Visibility:          project.VisibilityOpen,
		AllowedUniversities: []string{"financial-university"},
		MaxPeople:           2,
		CreatedAt:           testTime,
		UpdatedAt:           testTime,
	}
}

func mutationResult(p *project.Project, msg string) *ports.MutationResult {
	return &ports.MutationResult{
		Project: p,
		Notice:  ports.Notice{Message: msg, Tone: ports.ToneSuccess, DismissAfter: 3 * time.Second},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
