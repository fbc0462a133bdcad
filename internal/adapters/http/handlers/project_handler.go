// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// ProjectHandler handles HTTP requests for collaboration projects and their
// membership flows. Every handler acts as the user from X-User-ID.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects?view=&q=&tags=.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	view, err := project.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		dto.WriteErrorResponse(w, r, errInvalidQuery("view", err))
		return
	}

	q := project.Query{
		View:   view,
		Search: r.URL.Query().Get("q"),
		Tags:   queryList(r, "tags"),
	}
	projects, err := h.svc.ListProjects(r.Context(), actingUser(r), q)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// ListTags handles GET /api/v1/projects/tags.
func (h *ProjectHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ProjectTags(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, dto.TagListResponse{Tags: tags})
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectDraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.CreateProject(r.Context(), actingUser(r), req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMutationResponse(res))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	details, err := h.svc.GetProject(r.Context(), actingUser(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectDetailsResponse(details))
}

// UpdateProject handles PUT /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ProjectDraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.UpdateProject(r.Context(), actingUser(r), id, req.ToDraft())
	h.writeMutation(w, r, res, err)
}

// DeleteProject handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.DeleteProject(r.Context(), actingUser(r), id)
	h.writeMutation(w, r, res, err)
}

// JoinProject handles POST /api/v1/projects/{id}/join.
func (h *ProjectHandler) JoinProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.JoinRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.JoinProject(r.Context(), actingUser(r), id, req.RoleID)
	h.writeMutation(w, r, res, err)
}

// LeaveProject handles POST /api/v1/projects/{id}/leave.
func (h *ProjectHandler) LeaveProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.LeaveProject(r.Context(), actingUser(r), id)
	h.writeMutation(w, r, res, err)
}

// SendRequest handles POST /api/v1/projects/{id}/requests.
func (h *ProjectHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SendRequestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.SendRequest(r.Context(), actingUser(r), id, req.RoleID, req.Message)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMutationResponse(res))
}

// RespondRequest handles POST /api/v1/projects/{id}/requests/{requestId}/respond.
func (h *ProjectHandler) RespondRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	requestID, err := pathParam(r, "requestId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RespondRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.RespondRequest(r.Context(), actingUser(r), id, requestID, project.RequestStatus(req.Status))
	h.writeMutation(w, r, res, err)
}

// writeMutation renders a mutation outcome with 200 OK.
func (h *ProjectHandler) writeMutation(w http.ResponseWriter, r *http.Request, res *ports.MutationResult, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToMutationResponse(res))
}
