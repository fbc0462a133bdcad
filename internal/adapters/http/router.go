// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	accountHandler *handlers.AccountHandler,
	universityHandler *handlers.UniversityHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// University content.
		r.Get("/universities", universityHandler.ListUniversities)
		r.Route("/universities/{universityId}", func(r chi.Router) {
			r.Get("/schedule/search", universityHandler.SearchSchedule)
			r.Get("/schedule/{kind}/{targetId}", universityHandler.Schedule)
			r.Get("/news", universityHandler.News)
			r.Get("/news/content", universityHandler.NewsContent)
			r.Get("/calendar", universityHandler.Calendar)
			r.Get("/dean-office", universityHandler.DeanOffice)
			r.Get("/library", universityHandler.Library)
			r.Get("/overview", universityHandler.Overview)
		})

		// Accounts.
		r.Post("/accounts/register", accountHandler.Register)
		r.Get("/accounts/{accountId}", accountHandler.GetAccount)

		// Projects.
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects", projectHandler.CreateProject)
		r.Get("/projects/tags", projectHandler.ListTags)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Put("/projects/{id}", projectHandler.UpdateProject)
		r.Delete("/projects/{id}", projectHandler.DeleteProject)

		// Membership.
		r.Post("/projects/{id}/join", projectHandler.JoinProject)
		r.Post("/projects/{id}/leave", projectHandler.LeaveProject)
		r.Post("/projects/{id}/requests", projectHandler.SendRequest)
		r.Post("/projects/{id}/requests/{requestId}/respond", projectHandler.RespondRequest)
	})

	return r
}
