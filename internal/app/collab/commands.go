package collab

import (
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

// Kind names a mutation in logs and metrics.
type Kind string

// Mutation kinds.
const (
	KindJoin    Kind = "join"
	KindLeave   Kind = "leave"
	KindRequest Kind = "send_request"
	KindRespond Kind = "respond_request"
	KindCreate  Kind = "create"
	KindUpdate  Kind = "update"
	KindDelete  Kind = "delete"
)

// Command is one user intent against the project collection. Commands are
// plain values so a log of them can be replayed.
type Command interface {
	Kind() Kind

	// ProjectID is the target project, or "" when the command creates one.
	ProjectID() string
}

// Join seats the actor in a role of an open project.
type Join struct {
	Project string
	RoleID  string
}

func (c Join) Kind() Kind        { return KindJoin }
func (c Join) ProjectID() string { return c.Project }

// Leave frees the actor's seat.
type Leave struct {
	Project string
}

func (c Leave) Kind() Kind        { return KindLeave }
func (c Leave) ProjectID() string { return c.Project }

// SendRequest asks the leader for a seat in RoleID.
type SendRequest struct {
	Project string
	RoleID  string
	Message string
}

func (c SendRequest) Kind() Kind        { return KindRequest }
func (c SendRequest) ProjectID() string { return c.Project }

// RespondRequest is the leader's answer to a request.
type RespondRequest struct {
	Project   string
	RequestID string
	Status    project.RequestStatus
}

func (c RespondRequest) Kind() Kind        { return KindRespond }
func (c RespondRequest) ProjectID() string { return c.Project }

// Save creates a project when Project is empty and edits it otherwise.
type Save struct {
	Project string
	Draft   project.Draft
}

func (c Save) Kind() Kind {
	if c.Project == "" {
		return KindCreate
	}
	return KindUpdate
}

func (c Save) ProjectID() string { return c.Project }

// Delete removes a project together with its requests.
type Delete struct {
	Project string
}

func (c Delete) Kind() Kind        { return KindDelete }
func (c Delete) ProjectID() string { return c.Project }
