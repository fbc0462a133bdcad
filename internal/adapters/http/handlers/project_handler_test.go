package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/campus-superapp/internal/app/collab"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
	"github.com/jsamuelsen11/campus-superapp/mocks"
)

func newProjectHandler(t *testing.T) (*handlers.ProjectHandler, *mocks.MockProjectService) {
	t.Helper()
	svc := mocks.NewMockProjectService(t)
	return handlers.NewProjectHandler(svc), svc
}

func draftBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	return jsonBody(t, dto.ProjectDraftRequest{
		Title:               "Hackathon team",
		Roles:               []dto.RoleRequest{{Name: "Backend", RequiredCount: 2}},
		AllowedUniversities: []string{"financial-university"},
	})
}

// --- ListProjects ---

func TestListProjects_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	wantQuery := project.Query{View: project.ViewMine, Search: "bot", Tags: []string{"ai", "ml", "web"}}
	svc.EXPECT().ListProjects(mock.Anything, testUserID, mock.MatchedBy(func(q project.Query) bool {
		return q.View == wantQuery.View && q.Search == wantQuery.Search &&
			strings.Join(q.Tags, ",") == strings.Join(wantQuery.Tags, ",")
	})).Return([]project.Project{validProject()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?view=mine&q=bot&tags=ai,ml&tags=web", nil)
	h.ListProjects(rec, asUser(req, testUserID))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectListResponse](t, rec)
	if resp.Count != 1 || resp.Projects[0].ID != "p-1" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListProjects_Anonymous(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().ListProjects(mock.Anything, "", project.Query{View: project.ViewAvailable}).
		Return([]project.Project{}, nil)

	rec := httptest.NewRecorder()
	h.ListProjects(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectListResponse](t, rec)
	if resp.Count != 0 || resp.Projects == nil {
		t.Errorf("response = %+v, want empty list", resp)
	}
}

func TestListProjects_InvalidView(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	h.ListProjects(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects?view=archived", nil))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListProjects_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().ListProjects(mock.Anything, "", mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	h.ListProjects(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestListTags(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().ProjectTags(mock.Anything).Return([]string{"ai", "web"}, nil)

	rec := httptest.NewRecorder()
	h.ListTags(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/tags", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TagListResponse](t, rec)
	if strings.Join(resp.Tags, ",") != "ai,web" {
		t.Errorf("Tags = %v", resp.Tags)
	}
}

// --- CreateProject ---

func TestCreateProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	created := validProject()
	svc.EXPECT().CreateProject(mock.Anything, testUserID, mock.MatchedBy(func(d project.Draft) bool {
		return d.Title == "Hackathon team" && len(d.Roles) == 1
	})).Return(mutationResult(&created, "Project created"), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", draftBody(t))
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, asUser(req, testUserID))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.MutationResponse](t, rec)
	if resp.Project == nil || resp.Project.ID != "p-1" {
		t.Errorf("Project = %+v", resp.Project)
	}
	if resp.Notice.Message != "Project created" || resp.Notice.DismissAfterMS != 3000 {
		t.Errorf("Notice = %+v", resp.Notice)
	}
}

func TestCreateProject_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateProject_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	body := jsonBody(t, dto.ProjectDraftRequest{Title: " "})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", body)
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) < 2 {
		t.Errorf("Errors = %+v, want title and allowed_universities", resp.Errors)
	}
}

func TestCreateProject_Anonymous(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().CreateProject(mock.Anything, "", mock.Anything).
		Return(nil, domain.NewValidationError("user", "register before creating projects"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", draftBody(t))
	h.CreateProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetProject ---

func TestGetProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	p := validProject()
	details := &ports.ProjectDetails{
		Project: &p,
		Viewer:  p.ViewerState(testUserID),
		Members: []ports.Member{{Profile: p.Leader, RoleID: "be", RoleName: "Backend"}},
	}
	svc.EXPECT().GetProject(mock.Anything, testUserID, "p-1").Return(details, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/projects/p-1", nil), map[string]string{"id": "p-1"})
	h.GetProject(rec, asUser(req, testUserID))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ProjectDetailsResponse](t, rec)
	if !resp.Viewer.IsLeader || len(resp.Members) != 1 || len(resp.Viewer.OpenRoles) != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestGetProject_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().GetProject(mock.Anything, "", "missing").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/projects/missing", nil), map[string]string{"id": "missing"})
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetProject_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newProjectHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/projects/", nil), map[string]string{"id": " "})
	h.GetProject(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateProject / DeleteProject ---

func TestUpdateProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"not the leader", domain.ErrForbidden, http.StatusForbidden},
		{"missing project", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			p := validProject()
			var res *ports.MutationResult
			if tt.err == nil {
				res = mutationResult(&p, "Project updated")
			}
			svc.EXPECT().UpdateProject(mock.Anything, testUserID, "p-1", mock.AnythingOfType("project.Draft")).Return(res, tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/p-1", draftBody(t))
			req = withChiParams(req, map[string]string{"id": "p-1"})
			h.UpdateProject(rec, asUser(req, testUserID))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestDeleteProject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	svc.EXPECT().DeleteProject(mock.Anything, testUserID, "p-1").Return(mutationResult(nil, "Project deleted"), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/projects/p-1", nil), map[string]string{"id": "p-1"})
	h.DeleteProject(rec, asUser(req, testUserID))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MutationResponse](t, rec)
	if resp.Project != nil {
		t.Errorf("Project = %+v, want nil after delete", resp.Project)
	}
}

// --- Membership ---

func TestJoinProject(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h, svc := newProjectHandler(t)

		p := validProject()
		svc.EXPECT().JoinProject(mock.Anything, testUserID, "p-1", "be").Return(mutationResult(&p, "You joined the team"), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/join", jsonBody(t, dto.JoinRequest{RoleID: "be"}))
		req = withChiParams(req, map[string]string{"id": "p-1"})
		h.JoinProject(rec, asUser(req, testUserID))

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("role missing", func(t *testing.T) {
		t.Parallel()
		h, _ := newProjectHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/join", jsonBody(t, dto.JoinRequest{}))
		req = withChiParams(req, map[string]string{"id": "p-1"})
		h.JoinProject(rec, asUser(req, testUserID))

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("role full", func(t *testing.T) {
		t.Parallel()
		h, svc := newProjectHandler(t)

		svc.EXPECT().JoinProject(mock.Anything, testUserID, "p-1", "be").Return(nil, domain.ErrConflict)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/join", jsonBody(t, dto.JoinRequest{RoleID: "be"}))
		req = withChiParams(req, map[string]string{"id": "p-1"})
		h.JoinProject(rec, asUser(req, testUserID))

		requireStatus(t, rec, http.StatusConflict)
	})

	t.Run("persistence failure", func(t *testing.T) {
		t.Parallel()
		h, svc := newProjectHandler(t)

		mutErr := &collab.MutationError{Kind: collab.KindJoin, Message: "Could not join the project. Try again.", Err: errors.New("timeout")}
		svc.EXPECT().JoinProject(mock.Anything, testUserID, "p-1", "be").Return(nil, mutErr)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/join", jsonBody(t, dto.JoinRequest{RoleID: "be"}))
		req = withChiParams(req, map[string]string{"id": "p-1"})
		h.JoinProject(rec, asUser(req, testUserID))

		requireStatus(t, rec, http.StatusBadGateway)
		resp := decodeJSON[dto.ErrorResponse](t, rec)
		if resp.Detail != mutErr.Message {
			t.Errorf("Detail = %q, want %q", resp.Detail, mutErr.Message)
		}
	})
}

func TestLeaveProject(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	p := validProject()
	svc.EXPECT().LeaveProject(mock.Anything, testUserID, "p-1").Return(mutationResult(&p, "You left the team"), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/leave", nil), map[string]string{"id": "p-1"})
	h.LeaveProject(rec, asUser(req, testUserID))

	requireStatus(t, rec, http.StatusOK)
}

func TestSendRequest(t *testing.T) {
	t.Parallel()
	h, svc := newProjectHandler(t)

	p := validProject()
	svc.EXPECT().SendRequest(mock.Anything, "student-2", "p-1", "be", "I know Go").
		Return(mutationResult(&p, "Request sent"), nil)

	body := jsonBody(t, dto.SendRequestRequest{RoleID: "be", Message: "I know Go"})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/requests", body), map[string]string{"id": "p-1"})
	h.SendRequest(rec, asUser(req, "student-2"))

	requireStatus(t, rec, http.StatusCreated)
}

func TestRespondRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     string
		callSvc    bool
		wantStatus int
	}{
		{"accept", "accepted", true, http.StatusOK},
		{"decline", "declined", true, http.StatusOK},
		{"pending is not an answer", "pending", false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProjectHandler(t)

			if tt.callSvc {
				p := validProject()
				svc.EXPECT().RespondRequest(mock.Anything, testUserID, "p-1", "r-1", project.RequestStatus(tt.status)).
					Return(mutationResult(&p, "Request updated"), nil)
			}

			body := jsonBody(t, dto.RespondRequest{Status: tt.status})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/requests/r-1/respond", body)
			req = withChiParams(req, map[string]string{"id": "p-1", "requestId": "r-1"})
			h.RespondRequest(rec, asUser(req, testUserID))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
