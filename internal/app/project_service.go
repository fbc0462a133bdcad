// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/campus-superapp/internal/app/collab"
	appctx "github.com/jsamuelsen11/campus-superapp/internal/app/context"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the collaboration
// engine. It turns the caller's user id into a member snapshot, shapes the
// list and detail views, and hands every mutation to collab.Store.
type ProjectService struct {
	projects *collab.Store
	accounts ports.AccountStore
	resolver project.UniversityResolver
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(projects *collab.Store, accounts ports.AccountStore, resolver project.UniversityResolver, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		projects: projects,
		accounts: accounts,
		resolver: resolver,
		logger:   logger,
	}
}

// ListProjects returns the projects matching q as seen by userID. Users
// without an account browse every project.
func (s *ProjectService) ListProjects(ctx context.Context, userID string, q project.Query) ([]project.Project, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve user",
			slog.String("operation", "ListProjects"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	matched := project.Filter(s.projects.Projects(), actor, q, s.resolver)
	out := make([]project.Project, 0, len(matched))
	for _, p := range matched {
		out = append(out, *p)
	}
	return out, nil
}

// ProjectTags returns every tag in use.
func (s *ProjectService) ProjectTags(_ context.Context) ([]string, error) {
	return project.TagOptions(s.projects.Projects()), nil
}

// GetProject returns a project with its members resolved. Projects the user
// is not eligible for are reported as missing unless the user already
// belongs to them.
func (s *ProjectService) GetProject(ctx context.Context, userID, id string) (*ports.ProjectDetails, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("id", id))

	p, ok := s.projects.Project(id)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	actor, err := s.actor(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve user",
			slog.String("operation", "GetProject"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !project.CanView(p, actor, s.resolver) && !p.IsLeader(userID) && !p.HasParticipant(userID) {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	dir := project.Directory(s.projects.Projects(), actor)
	members := make([]ports.Member, 0, len(p.Participants))
	for _, part := range p.Participants {
		m := ports.Member{Profile: project.Profile(dir, part.UserID), RoleID: part.RoleID}
		if idx := p.RoleIndex(part.RoleID); idx >= 0 {
			m.RoleName = p.Roles[idx].Name
		}
		members = append(members, m)
	}

	return &ports.ProjectDetails{
		Project: p,
		Viewer:  p.ViewerState(userID),
		Members: members,
	}, nil
}

// CreateProject makes userID the leader of a new project.
func (s *ProjectService) CreateProject(ctx context.Context, userID string, d project.Draft) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("title", d.Title))
	return s.dispatch(ctx, "CreateProject", userID, collab.Save{Draft: d})
}

// UpdateProject edits a project on behalf of its leader.
func (s *ProjectService) UpdateProject(ctx context.Context, userID, id string, d project.Draft) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "updating project", slog.String("id", id))
	return s.dispatch(ctx, "UpdateProject", userID, collab.Save{Project: id, Draft: d})
}

// DeleteProject removes a project on behalf of its leader.
func (s *ProjectService) DeleteProject(ctx context.Context, userID, id string) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "deleting project", slog.String("id", id))
	return s.dispatch(ctx, "DeleteProject", userID, collab.Delete{Project: id})
}

// JoinProject seats userID in roleID.
func (s *ProjectService) JoinProject(ctx context.Context, userID, id, roleID string) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "joining project", slog.String("id", id), slog.String("role_id", roleID))
	return s.dispatch(ctx, "JoinProject", userID, collab.Join{Project: id, RoleID: roleID})
}

// LeaveProject frees userID's seat.
func (s *ProjectService) LeaveProject(ctx context.Context, userID, id string) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "leaving project", slog.String("id", id))
	return s.dispatch(ctx, "LeaveProject", userID, collab.Leave{Project: id})
}

// SendRequest applies for roleID.
func (s *ProjectService) SendRequest(ctx context.Context, userID, id, roleID, message string) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "sending join request", slog.String("id", id), slog.String("role_id", roleID))
	return s.dispatch(ctx, "SendRequest", userID, collab.SendRequest{Project: id, RoleID: roleID, Message: message})
}

// RespondRequest answers a join request.
func (s *ProjectService) RespondRequest(ctx context.Context, userID, id, requestID string, status project.RequestStatus) (*ports.MutationResult, error) {
	s.logger.InfoContext(ctx, "responding to join request",
		slog.String("id", id),
		slog.String("request_id", requestID),
		slog.String("status", string(status)),
	)
	return s.dispatch(ctx, "RespondRequest", userID, collab.RespondRequest{Project: id, RequestID: requestID, Status: status})
}

func (s *ProjectService) dispatch(ctx context.Context, op, userID string, cmd collab.Command) (*ports.MutationResult, error) {
	actor, err := s.actor(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve user",
			slog.String("operation", op),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	res, err := s.projects.Dispatch(ctx, actor, cmd)
	if err != nil {
		var mutErr *collab.MutationError
		if !errors.As(err, &mutErr) {
			s.logger.WarnContext(ctx, "project mutation rejected",
				slog.String("operation", op),
				slog.String("project_id", cmd.ProjectID()),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	return res, nil
}

// actor loads the account behind userID once per request. Unknown users and
// an empty id yield a nil snapshot, which browses freely and is refused by
// every mutation.
func (s *ProjectService) actor(ctx context.Context, userID string) (*project.UserSnapshot, error) {
	if userID == "" {
		return nil, nil
	}

	rc := appctx.Ensure(ctx)
	acc, err := appctx.GetOrFetch(rc, accountKey(userID), func(ctx context.Context) (*account.Account, error) {
		return s.accounts.Get(ctx, userID)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading account %s: %w", userID, err)
	}

	snap := acc.Snapshot()
	return &snap, nil
}

func accountKey(userID string) string {
	return "account:" + userID
}
