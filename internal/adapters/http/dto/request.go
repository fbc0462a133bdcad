package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

// RoleRequest is a team role inside a project draft.
type RoleRequest struct {
	ID            string `json:"id,omitempty" validate:"max=64"`
	Name          string `json:"name" validate:"notblank,max=120"`
	RequiredCount int    `json:"required_count"`
	FilledCount   int    `json:"filled_count"`
}

// ProjectDraftRequest is the JSON body for creating or editing a project.
// Both create and update send the full draft.
type ProjectDraftRequest struct {
	Title               string        `json:"title" validate:"notblank,max=200"`
	Description         string        `json:"description" validate:"max=5000"`
	Tags                []string      `json:"tags" validate:"max=20,dive,max=40"`
	Roles               []RoleRequest `json:"roles" validate:"max=50,dive"`
	Visibility          string        `json:"visibility,omitempty" validate:"omitempty,oneof=open closed"`
	AllowedUniversities []string      `json:"allowed_universities" validate:"min=1"`
	MinCourse           *int          `json:"min_course,omitempty" validate:"omitempty,min=1,max=10"`
	MaxCourse           *int          `json:"max_course,omitempty" validate:"omitempty,min=1,max=10"`
	LeaderRoleID        string        `json:"leader_role_id,omitempty"`
}

// Validate checks the request shape. Cross-field rules and university
// resolution are left to project.Draft.Normalize.
func (r *ProjectDraftRequest) Validate() error {
	return validateStruct(r)
}

// ToDraft converts the request to a domain draft.
func (r *ProjectDraftRequest) ToDraft() project.Draft {
	roles := make([]project.Role, len(r.Roles))
	for i, role := range r.Roles {
		roles[i] = project.Role{
			ID:            strings.TrimSpace(role.ID),
			Name:          role.Name,
			RequiredCount: role.RequiredCount,
			FilledCount:   role.FilledCount,
		}
	}
	return project.Draft{
		Title:               r.Title,
		Description:         r.Description,
		Tags:                r.Tags,
		Roles:               roles,
		Visibility:          project.Visibility(r.Visibility),
		AllowedUniversities: r.AllowedUniversities,
		MinCourse:           r.MinCourse,
		MaxCourse:           r.MaxCourse,
		LeaderRoleID:        strings.TrimSpace(r.LeaderRoleID),
	}
}

// JoinRequest is the JSON body for joining an open project.
type JoinRequest struct {
	RoleID string `json:"role_id" validate:"notblank"`
}

// Validate checks that a role was chosen.
func (r *JoinRequest) Validate() error {
	return validateStruct(r)
}

// SendRequestRequest is the JSON body for applying to a closed project.
type SendRequestRequest struct {
	RoleID  string `json:"role_id" validate:"notblank"`
	Message string `json:"message" validate:"max=2000"`
}

// Validate checks that a role was chosen and the message fits.
func (r *SendRequestRequest) Validate() error {
	return validateStruct(r)
}

// RespondRequest is the leader's answer to a join request.
type RespondRequest struct {
	Status string `json:"status" validate:"oneof=accepted declined"`
}

// Validate checks that status is an answer.
func (r *RespondRequest) Validate() error {
	return validateStruct(r)
}

// ScheduleProfileRequest is the timetable a student follows.
type ScheduleProfileRequest struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// RegisterRequest is the sign-up form. Field rules live in
// account.Registration.Validate; only the shape is checked here.
type RegisterRequest struct {
	UserID          string                  `json:"user_id" validate:"notblank,max=128"`
	FullName        string                  `json:"full_name" validate:"max=200"`
	Email           string                  `json:"email,omitempty" validate:"omitempty,max=254,email"`
	University      string                  `json:"university" validate:"max=200"`
	Course          Course                  `json:"course"`
	GroupLabel      string                  `json:"group_label" validate:"max=64"`
	ScheduleProfile *ScheduleProfileRequest `json:"schedule_profile,omitempty"`
}

// Validate checks the request shape.
func (r *RegisterRequest) Validate() error {
	return validateStruct(r)
}

// ToRegistration converts the request to the domain form.
func (r *RegisterRequest) ToRegistration() account.Registration {
	reg := account.Registration{
		UserID:     strings.TrimSpace(r.UserID),
		FullName:   r.FullName,
		Email:      strings.TrimSpace(r.Email),
		University: r.University,
		Course:     string(r.Course),
		GroupLabel: r.GroupLabel,
	}
	if sp := r.ScheduleProfile; sp != nil {
		reg.ScheduleProfile = &account.ScheduleProfile{ID: sp.ID, Type: sp.Type, Label: sp.Label}
	}
	return reg
}

// Course accepts the study year as a JSON number or a free-form string such
// as "3 курс".
type Course string

// UnmarshalJSON implements json.Unmarshaler.
func (c *Course) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Course(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Course(n.String())
	return nil
}
