// Package project models collaboration projects: roles to fill, the members
// filling them and the requests waiting for the leader's answer. Every
// mutating method works in place; callers clone first when they need the
// previous state.
package project

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

// Visibility controls whether students join directly or through a request.
type Visibility string

const (
	VisibilityOpen   Visibility = "open"
	VisibilityClosed Visibility = "closed"
)

// IsValid returns true if the visibility is one of the defined constants.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityOpen, VisibilityClosed:
		return true
	default:
		return false
	}
}

// RequestStatus is the lifecycle state of a join request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// IsValid returns true if the status is one of the defined constants.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestDeclined:
		return true
	default:
		return false
	}
}

// IsAnswer reports whether a leader may set the status on a request.
func (s RequestStatus) IsAnswer() bool {
	return s == RequestAccepted || s == RequestDeclined
}

// UserSnapshot is a copy of an account taken when the user acted. Snapshots
// are stored inside projects and never refreshed from the account later.
type UserSnapshot struct {
	ID           string
	FullName     string
	University   string
	UniversityID string
	Course       int
	Group        string
}

// Role is a slot in the team.
type Role struct {
	ID            string
	Name          string
	RequiredCount int
	FilledCount   int
}

// HasCapacity reports whether another member fits into the role.
func (r Role) HasCapacity() bool {
	return r.FilledCount < r.RequiredCount
}

// Participant links a user to the role they fill.
type Participant struct {
	UserID string
	RoleID string
}

// Request is a user's application to fill a role.
type Request struct {
	ID      string
	User    UserSnapshot
	RoleID  string
	Message string
	Status  RequestStatus
}

// Project is a collaboration project.
type Project struct {
	ID                  string
	Title               string
	Description         string
	Tags                []string
	Leader              UserSnapshot
	LeaderRoleID        string
	Roles               []Role
	Visibility          Visibility
	AllowedUniversities []string
	MinCourse           *int
	MaxCourse           *int
	Participants        []Participant
	PendingRequests     []Request
	MaxPeople           int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Clone returns a deep copy that shares no slices or pointers with p.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Tags = cloneSlice(p.Tags)
	c.Roles = cloneSlice(p.Roles)
	c.AllowedUniversities = cloneSlice(p.AllowedUniversities)
	c.Participants = cloneSlice(p.Participants)
	c.PendingRequests = cloneSlice(p.PendingRequests)
	c.MinCourse = cloneInt(p.MinCourse)
	c.MaxCourse = cloneInt(p.MaxCourse)
	return &c
}

// IsLeader reports whether userID leads the project.
func (p *Project) IsLeader(userID string) bool {
	return userID != "" && p.Leader.ID == userID
}

// RoleIndex returns the index of the role with id, or -1.
func (p *Project) RoleIndex(id string) int {
	for i := range p.Roles {
		if p.Roles[i].ID == id {
			return i
		}
	}
	return -1
}

// ParticipantIndex returns the index of userID's participant entry, or -1.
func (p *Project) ParticipantIndex(userID string) int {
	for i := range p.Participants {
		if p.Participants[i].UserID == userID {
			return i
		}
	}
	return -1
}

// HasParticipant reports whether userID is a member.
func (p *Project) HasParticipant(userID string) bool {
	return p.ParticipantIndex(userID) >= 0
}

// RequestIndex returns the index of the request with id, or -1.
func (p *Project) RequestIndex(id string) int {
	for i := range p.PendingRequests {
		if p.PendingRequests[i].ID == id {
			return i
		}
	}
	return -1
}

// RecountRoles sets every role's FilledCount to the number of participants
// holding it, clamped to RequiredCount, and refreshes MaxPeople.
func (p *Project) RecountRoles() {
	counts := make(map[string]int, len(p.Roles))
	for _, part := range p.Participants {
		counts[part.RoleID]++
	}
	for i := range p.Roles {
		p.Roles[i].FilledCount = min(p.Roles[i].RequiredCount, counts[p.Roles[i].ID])
	}
	p.MaxPeople = SumRequired(p.Roles)
}

// SumRequired is the team size implied by roles.
func SumRequired(roles []Role) int {
	total := 0
	for _, r := range roles {
		total += r.RequiredCount
	}
	return total
}

// Validate checks the structural invariants of a stored project.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if p.ID == "" {
		fields["id"] = domain.MsgRequired
	}
	if !p.Visibility.IsValid() {
		fields["visibility"] = fmt.Sprintf("invalid: %q", p.Visibility)
	}
	for i, r := range p.Roles {
		if r.FilledCount < 0 || r.FilledCount > r.RequiredCount {
			fields[fmt.Sprintf("roles[%d].filled_count", i)] = fmt.Sprintf("must be 0-%d, got %d", r.RequiredCount, r.FilledCount)
		}
	}
	seen := make(map[string]bool, len(p.Participants))
	for _, part := range p.Participants {
		if seen[part.UserID] {
			fields["participants"] = fmt.Sprintf("user %q appears more than once", part.UserID)
		}
		seen[part.UserID] = true
	}

	return domain.FieldsOrNil(fields)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
