package storage

import (
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

// Collection names.
const (
	CollectionProjects = "projects"
	CollectionAccounts = "accounts"
)

// Stored documents use camelCase keys so records written by earlier versions
// of the app stay readable.

type userDoc struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	University   string `json:"university"`
	UniversityID string `json:"universityId,omitempty"`
	Course       int    `json:"course"`
	Group        string `json:"group"`
}

type roleDoc struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	RequiredCount int    `json:"requiredCount"`
	FilledCount   int    `json:"filledCount"`
}

type participantDoc struct {
	UserID string `json:"userId"`
	RoleID string `json:"roleId"`
}

type requestDoc struct {
	ID      string  `json:"id"`
	User    userDoc `json:"user"`
	RoleID  string  `json:"roleId"`
	Message string  `json:"message"`
	Status  string  `json:"status"`
}

type projectDoc struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Tags                []string         `json:"tags"`
	Leader              userDoc          `json:"leader"`
	LeaderRoleID        string           `json:"leaderRoleId,omitempty"`
	Roles               []roleDoc        `json:"roles"`
	Visibility          string           `json:"visibility"`
	AllowedUniversities []string         `json:"allowedUniversities"`
	MinCourse           *int             `json:"minCourse"`
	MaxCourse           *int             `json:"maxCourse"`
	Participants        []participantDoc `json:"participants"`
	PendingRequests     []requestDoc     `json:"pendingRequests"`
	MaxPeople           int              `json:"maxPeople"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

func toProjectDoc(p *project.Project) projectDoc {
	d := projectDoc{
		ID:                  p.ID,
		Title:               p.Title,
		Description:         p.Description,
		Tags:                append([]string{}, p.Tags...),
		Leader:              userDoc(p.Leader),
		LeaderRoleID:        p.LeaderRoleID,
		Roles:               make([]roleDoc, 0, len(p.Roles)),
		Visibility:          string(p.Visibility),
		AllowedUniversities: append([]string{}, p.AllowedUniversities...),
		MinCourse:           p.MinCourse,
		MaxCourse:           p.MaxCourse,
		Participants:        make([]participantDoc, 0, len(p.Participants)),
		PendingRequests:     make([]requestDoc, 0, len(p.PendingRequests)),
		MaxPeople:           p.MaxPeople,
		CreatedAt:           p.CreatedAt.UTC(),
		UpdatedAt:           p.UpdatedAt.UTC(),
	}
	for _, r := range p.Roles {
		d.Roles = append(d.Roles, roleDoc(r))
	}
	for _, part := range p.Participants {
		d.Participants = append(d.Participants, participantDoc(part))
	}
	for _, req := range p.PendingRequests {
		d.PendingRequests = append(d.PendingRequests, requestDoc{
			ID: req.ID, User: userDoc(req.User), RoleID: req.RoleID, Message: req.Message, Status: string(req.Status),
		})
	}
	return d
}

func (d projectDoc) toDomain() *project.Project {
	p := &project.Project{
		ID:                  d.ID,
		Title:               d.Title,
		Description:         d.Description,
		Tags:                append([]string{}, d.Tags...),
		Leader:              project.UserSnapshot(d.Leader),
		LeaderRoleID:        d.LeaderRoleID,
		Roles:               make([]project.Role, 0, len(d.Roles)),
		Visibility:          project.Visibility(d.Visibility),
		AllowedUniversities: append([]string{}, d.AllowedUniversities...),
		MinCourse:           d.MinCourse,
		MaxCourse:           d.MaxCourse,
		Participants:        make([]project.Participant, 0, len(d.Participants)),
		PendingRequests:     make([]project.Request, 0, len(d.PendingRequests)),
		MaxPeople:           d.MaxPeople,
		CreatedAt:           d.CreatedAt.UTC(),
		UpdatedAt:           d.UpdatedAt.UTC(),
	}
	if !p.Visibility.IsValid() {
		p.Visibility = project.VisibilityOpen
	}
	for _, r := range d.Roles {
		p.Roles = append(p.Roles, project.Role(r))
	}
	for _, part := range d.Participants {
		p.Participants = append(p.Participants, project.Participant(part))
	}
	for _, req := range d.PendingRequests {
		p.PendingRequests = append(p.PendingRequests, project.Request{
			ID: req.ID, User: project.UserSnapshot(req.User), RoleID: req.RoleID, Message: req.Message,
			Status: project.RequestStatus(req.Status),
		})
	}
	return p
}

type scheduleProfileDoc struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

type accountDoc struct {
	UserID          string              `json:"userId"`
	FullName        string              `json:"fullName"`
	Email           string              `json:"email"`
	UniversityID    string              `json:"universityId"`
	UniversityTitle string              `json:"universityTitle"`
	Course          int                 `json:"course"`
	GroupLabel      string              `json:"groupLabel"`
	ScheduleProfile *scheduleProfileDoc `json:"scheduleProfile"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func toAccountDoc(a *account.Account) accountDoc {
	d := accountDoc{
		UserID:          a.UserID,
		FullName:        a.FullName,
		Email:           a.Email,
		UniversityID:    a.UniversityID,
		UniversityTitle: a.UniversityTitle,
		Course:          a.Course,
		GroupLabel:      a.GroupLabel,
		CreatedAt:       a.CreatedAt.UTC(),
		UpdatedAt:       a.UpdatedAt.UTC(),
	}
	if sp := a.ScheduleProfile; sp != nil {
		d.ScheduleProfile = &scheduleProfileDoc{ID: sp.ID, Type: sp.Type, Label: sp.Label}
	}
	return d
}

func (d accountDoc) toDomain() *account.Account {
	a := &account.Account{
		UserID:          d.UserID,
		FullName:        d.FullName,
		Email:           d.Email,
		UniversityID:    d.UniversityID,
		UniversityTitle: d.UniversityTitle,
		Course:          d.Course,
		GroupLabel:      d.GroupLabel,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
	if sp := d.ScheduleProfile; sp != nil {
		a.ScheduleProfile = &account.ScheduleProfile{ID: sp.ID, Type: sp.Type, Label: sp.Label}
	}
	return a
}
