// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// UserResponse is a member profile as captured when the user acted.
type UserResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	University   string `json:"university"`
	UniversityID string `json:"university_id,omitempty"`
	Course       int    `json:"course"`
	Group        string `json:"group,omitempty"`
}

// RoleResponse is a team role with its fill state.
type RoleResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	RequiredCount int    `json:"required_count"`
	FilledCount   int    `json:"filled_count"`
}

// ParticipantResponse links a member to a role.
type ParticipantResponse struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

// JoinRequestResponse is an application to a closed project.
type JoinRequestResponse struct {
	ID      string       `json:"id"`
	User    UserResponse `json:"user"`
	RoleID  string       `json:"role_id"`
	Message string       `json:"message"`
	Status  string       `json:"status"`
}

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Tags                []string              `json:"tags"`
	Leader              UserResponse          `json:"leader"`
	LeaderRoleID        string                `json:"leader_role_id,omitempty"`
	Roles               []RoleResponse        `json:"roles"`
	Visibility          string                `json:"visibility"`
	AllowedUniversities []string              `json:"allowed_universities"`
	MinCourse           *int                  `json:"min_course,omitempty"`
	MaxCourse           *int                  `json:"max_course,omitempty"`
	Participants        []ParticipantResponse `json:"participants"`
	PendingRequests     []JoinRequestResponse `json:"pending_requests"`
	MaxPeople           int                   `json:"max_people"`
	CreatedAt           string                `json:"created_at"`
	UpdatedAt           string                `json:"updated_at"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// TagListResponse lists the tags in use.
type TagListResponse struct {
	Tags []string `json:"tags"`
}

// ViewerResponse tells the client what the requesting user may do.
type ViewerResponse struct {
	IsLeader      bool                 `json:"is_leader"`
	IsParticipant bool                 `json:"is_participant"`
	RoleID        string               `json:"role_id,omitempty"`
	Request       *JoinRequestResponse `json:"request,omitempty"`
	OpenRoles     []RoleResponse       `json:"open_roles"`
}

// MemberResponse is a participant with their profile resolved.
type MemberResponse struct {
	User     UserResponse `json:"user"`
	RoleID   string       `json:"role_id"`
	RoleName string       `json:"role_name"`
}

// ProjectDetailsResponse is the project page.
type ProjectDetailsResponse struct {
	Project ProjectResponse  `json:"project"`
	Viewer  ViewerResponse   `json:"viewer"`
	Members []MemberResponse `json:"members"`
}

// NoticeResponse is the banner shown after a mutation.
type NoticeResponse struct {
	Message        string `json:"message"`
	Tone           string `json:"tone"`
	DismissAfterMS int64  `json:"dismiss_after_ms"`
}

// MutationResponse is returned by every project mutation. Project is absent
// after a delete.
type MutationResponse struct {
	Project *ProjectResponse `json:"project,omitempty"`
	Notice  NoticeResponse   `json:"notice"`
}

// ToUserResponse converts a member snapshot.
func ToUserResponse(u project.UserSnapshot) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		University:   u.University,
		UniversityID: u.UniversityID,
		Course:       u.Course,
		Group:        u.Group,
	}
}

func toRoleResponses(roles []project.Role) []RoleResponse {
	out := make([]RoleResponse, len(roles))
	for i, r := range roles {
		out[i] = RoleResponse{ID: r.ID, Name: r.Name, RequiredCount: r.RequiredCount, FilledCount: r.FilledCount}
	}
	return out
}

func toJoinRequestResponse(r project.Request) JoinRequestResponse {
	return JoinRequestResponse{
		ID:      r.ID,
		User:    ToUserResponse(r.User),
		RoleID:  r.RoleID,
		Message: r.Message,
		Status:  string(r.Status),
	}
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
// Nil slices are rendered as empty arrays.
func ToProjectResponse(p *project.Project) ProjectResponse {
	participants := make([]ParticipantResponse, len(p.Participants))
	for i, part := range p.Participants {
		participants[i] = ParticipantResponse(part)
	}
	requests := make([]JoinRequestResponse, len(p.PendingRequests))
	for i, r := range p.PendingRequests {
		requests[i] = toJoinRequestResponse(r)
	}

	return ProjectResponse{
		ID:                  p.ID,
		Title:               p.Title,
		Description:         p.Description,
		Tags:                nonNil(p.Tags),
		Leader:              ToUserResponse(p.Leader),
		LeaderRoleID:        p.LeaderRoleID,
		Roles:               toRoleResponses(p.Roles),
		Visibility:          string(p.Visibility),
		AllowedUniversities: nonNil(p.AllowedUniversities),
		MinCourse:           p.MinCourse,
		MaxCourse:           p.MaxCourse,
		Participants:        participants,
		PendingRequests:     requests,
		MaxPeople:           p.MaxPeople,
		CreatedAt:           formatTime(p.CreatedAt),
		UpdatedAt:           formatTime(p.UpdatedAt),
	}
}

// ToProjectListResponse converts a slice of domain Project entities to an
// HTTP list response DTO.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// ToProjectDetailsResponse converts a project page.
func ToProjectDetailsResponse(d *ports.ProjectDetails) ProjectDetailsResponse {
	viewer := ViewerResponse{
		IsLeader:      d.Viewer.IsLeader,
		IsParticipant: d.Viewer.IsParticipant,
		RoleID:        d.Viewer.RoleID,
		OpenRoles:     toRoleResponses(d.Viewer.OpenRoles),
	}
	if d.Viewer.Request != nil {
		req := toJoinRequestResponse(*d.Viewer.Request)
		viewer.Request = &req
	}

	members := make([]MemberResponse, len(d.Members))
	for i, m := range d.Members {
		members[i] = MemberResponse{User: ToUserResponse(m.Profile), RoleID: m.RoleID, RoleName: m.RoleName}
	}

	return ProjectDetailsResponse{
		Project: ToProjectResponse(d.Project),
		Viewer:  viewer,
		Members: members,
	}
}

// ToMutationResponse converts a mutation result.
func ToMutationResponse(res *ports.MutationResult) MutationResponse {
	out := MutationResponse{
		Notice: NoticeResponse{
			Message:        res.Notice.Message,
			Tone:           string(res.Notice.Tone),
			DismissAfterMS: res.Notice.DismissAfter.Milliseconds(),
		},
	}
	if res.Project != nil {
		p := ToProjectResponse(res.Project)
		out.Project = &p
	}
	return out
}

// ScheduleProfileResponse is the timetable a student follows.
type ScheduleProfileResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// AccountResponse is a registered student.
type AccountResponse struct {
	UserID          string                   `json:"user_id"`
	FullName        string                   `json:"full_name"`
	Email           string                   `json:"email"`
	UniversityID    string                   `json:"university_id"`
	UniversityTitle string                   `json:"university_title"`
	Course          int                      `json:"course"`
	GroupLabel      string                   `json:"group_label"`
	ScheduleProfile *ScheduleProfileResponse `json:"schedule_profile,omitempty"`
	CreatedAt       string                   `json:"created_at"`
	UpdatedAt       string                   `json:"updated_at"`
}

// ToAccountResponse converts a domain account.
func ToAccountResponse(a *account.Account) AccountResponse {
	resp := AccountResponse{
		UserID:          a.UserID,
		FullName:        a.FullName,
		Email:           a.Email,
		UniversityID:    a.UniversityID,
		UniversityTitle: a.UniversityTitle,
		Course:          a.Course,
		GroupLabel:      a.GroupLabel,
		CreatedAt:       formatTime(a.CreatedAt),
		UpdatedAt:       formatTime(a.UpdatedAt),
	}
	if sp := a.ScheduleProfile; sp != nil {
		resp.ScheduleProfile = &ScheduleProfileResponse{ID: sp.ID, Type: sp.Type, Label: sp.Label}
	}
	return resp
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
