package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
)

// Tone tells clients how to style a notice.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneNeutral Tone = "neutral"
)

// Notice is the banner shown after a successful mutation. Clients hide it
// after DismissAfter.
type Notice struct {
	Message      string
	Tone         Tone
	DismissAfter time.Duration
}

// MutationResult is returned by every project mutation. Project is the
// store-confirmed record, or nil after a delete.
type MutationResult struct {
	Project *project.Project
	Notice  Notice
}

// Member is a participant with their profile resolved.
type Member struct {
	Profile  project.UserSnapshot
	RoleID   string
	RoleName string
}

// ProjectDetails is a single project as seen by the requesting user.
type ProjectDetails struct {
	Project *project.Project
	Viewer  project.Viewer
	Members []Member
}

// ProjectService is the collaboration use-case port. userID identifies the
// acting student; an empty userID browses anonymously and is rejected with
// domain.ErrValidation by every mutation.
type ProjectService interface {
	// ListProjects returns the projects matching q as seen by userID.
	ListProjects(ctx context.Context, userID string, q project.Query) ([]project.Project, error)

	// ProjectTags returns every tag in use, in first-seen order.
	ProjectTags(ctx context.Context) ([]string, error)

	// GetProject returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, userID, id string) (*ProjectDetails, error)

	// CreateProject makes userID the leader of a new project.
	CreateProject(ctx context.Context, userID string, d project.Draft) (*MutationResult, error)

	// UpdateProject edits a project. Only the leader may edit.
	UpdateProject(ctx context.Context, userID, id string, d project.Draft) (*MutationResult, error)

	// DeleteProject removes a project. Only the leader may delete.
	DeleteProject(ctx context.Context, userID, id string) (*MutationResult, error)

	// JoinProject seats userID in roleID of an open project.
	JoinProject(ctx context.Context, userID, id, roleID string) (*MutationResult, error)

	// LeaveProject frees userID's seat.
	LeaveProject(ctx context.Context, userID, id string) (*MutationResult, error)

	// SendRequest applies for roleID with a message to the leader.
	SendRequest(ctx context.Context, userID, id, roleID, message string) (*MutationResult, error)

	// RespondRequest accepts or declines a request. Only the leader may answer.
	RespondRequest(ctx context.Context, userID, id, requestID string, status project.RequestStatus) (*MutationResult, error)
}

// AccountService registers and reads student accounts.
type AccountService interface {
	// Register validates the form and upserts the account.
	Register(ctx context.Context, reg account.Registration) (*account.Account, error)

	// GetAccount returns domain.ErrNotFound if the account does not exist.
	GetAccount(ctx context.Context, userID string) (*account.Account, error)
}

// UniversityService serves university content. Every method except
// Universities returns domain.ErrNotFound for an unknown university id.
type UniversityService interface {
	Universities() []university.University
	SearchSchedule(ctx context.Context, universityID, term string) ([]university.ScheduleTarget, error)
	Schedule(ctx context.Context, universityID string, q university.ScheduleQuery) ([]university.LessonSlot, error)
	News(ctx context.Context, universityID string) ([]university.NewsItem, error)
	NewsArticle(ctx context.Context, universityID, url string) (*university.NewsArticle, error)
	Calendar(ctx context.Context, universityID string, r university.DateRange) ([]university.CalendarEvent, error)
	DeanOffice(ctx context.Context, universityID string) ([]university.DeanOfficeLink, error)
	Library(ctx context.Context, universityID, lang string) (*university.LibraryPage, error)

	// Overview loads news, events and dean-office links concurrently. A
	// failing section is left empty; an error is returned only when all fail.
	Overview(ctx context.Context, universityID string) (*university.Overview, error)
}
