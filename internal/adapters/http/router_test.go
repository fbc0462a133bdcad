package http_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/campus-superapp/internal/adapters/http"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/mocks"
)

type testServices struct {
	projects     *mocks.MockProjectService
	accounts     *mocks.MockAccountService
	universities *mocks.MockUniversityService
	registry     *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, testServices) {
	t.Helper()
	svc := testServices{
		projects:     mocks.NewMockProjectService(t),
		accounts:     mocks.NewMockAccountService(t),
		universities: mocks.NewMockUniversityService(t),
		registry:     mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(
		handlers.NewProjectHandler(svc.projects),
		handlers.NewAccountHandler(svc.accounts),
		handlers.NewUniversityHandler(svc.universities),
		handlers.NewHealthHandler(svc.registry),
		middlewares...,
	)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/universities"},
		{http.MethodGet, "/api/v1/universities/{universityId}/schedule/search"},
		{http.MethodGet, "/api/v1/universities/{universityId}/schedule/{kind}/{targetId}"},
		{http.MethodGet, "/api/v1/universities/{universityId}/news"},
		{http.MethodGet, "/api/v1/universities/{universityId}/news/content"},
		{http.MethodGet, "/api/v1/universities/{universityId}/calendar"},
		{http.MethodGet, "/api/v1/universities/{universityId}/dean-office"},
		{http.MethodGet, "/api/v1/universities/{universityId}/library"},
		{http.MethodGet, "/api/v1/universities/{universityId}/overview"},
		{http.MethodPost, "/api/v1/accounts/register"},
		{http.MethodGet, "/api/v1/accounts/{accountId}"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodPost, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/projects/tags"},
		{http.MethodGet, "/api/v1/projects/{id}"},
		{http.MethodPut, "/api/v1/projects/{id}"},
		{http.MethodDelete, "/api/v1/projects/{id}"},
		{http.MethodPost, "/api/v1/projects/{id}/join"},
		{http.MethodPost, "/api/v1/projects/{id}/leave"},
		{http.MethodPost, "/api/v1/projects/{id}/requests"},
		{http.MethodPost, "/api/v1/projects/{id}/requests/{requestId}/respond"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, svc := newTestRouter(t, testMW)
	svc.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationThroughStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(svc testServices)
		wantStatus int
		wantType   string
	}{
		{
			name:   "list projects as the acting student",
			method: http.MethodGet,
			path:   "/api/v1/projects",
			setup: func(svc testServices) {
				svc.projects.EXPECT().ListProjects(mock.Anything, "student-9", mock.Anything).Return([]project.Project{}, nil)
			},
			wantStatus: http.StatusOK,
			wantType:   "application/json",
		},
		{
			name:   "join a full role",
			method: http.MethodPost,
			path:   "/api/v1/projects/p1/join",
			body:   `{"role_id":"dev"}`,
			setup: func(svc testServices) {
				svc.projects.EXPECT().JoinProject(mock.Anything, "student-9", "p1", "dev").
					Return(nil, fmt.Errorf("role dev in project p1 has no free seats: %w", domain.ErrConflict))
			},
			wantStatus: http.StatusConflict,
			wantType:   "application/problem+json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, svc := newTestRouter(t, middleware.Stack(slog.New(slog.DiscardHandler), nil, time.Second))
			tt.setup(svc)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(middleware.HeaderUserID, "student-9")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.wantType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.wantType)
			}
			if rec.Header().Get(middleware.HeaderRequestID) == "" {
				t.Error("response has no request id")
			}
		})
	}
}

func TestRouter_TagsNotTreatedAsID(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)
	svc.projects.EXPECT().ProjectTags(mock.Anything).Return([]string{"ai"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/tags", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_ScheduleParams(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)
	svc.universities.EXPECT().SearchSchedule(mock.Anything, "rgeu-university", "eco").Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/universities/rgeu-university/schedule/search?term=eco", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/projects", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
