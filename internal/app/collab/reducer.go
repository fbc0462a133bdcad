package collab

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

// MsgAccountRequired is shown when a mutation arrives without a known user.
const MsgAccountRequired = "Fill in your account details to continue."

// Env carries the inputs a transformation needs besides the project itself.
type Env struct {
	Resolver project.UniversityResolver
	Now      func() time.Time
	NewID    func() string
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now()
}

func (e Env) newID() string {
	if e.NewID == nil {
		return uuid.NewString()
	}
	return e.NewID()
}

// Mutation records one applied command. Before is nil for a create and After
// is nil for a delete, so Before is always the state to restore.
type Mutation struct {
	Command Command
	Actor   project.UserSnapshot
	Before  *project.Project
	After   *project.Project
}

// Apply computes the effect of cmd on current without touching it. current
// is nil only for a create. Rejections are domain errors and leave no trace.
func Apply(env Env, current *project.Project, actor *project.UserSnapshot, cmd Command) (Mutation, error) {
	if actor == nil || actor.ID == "" {
		return Mutation{}, domain.NewValidationError("user", MsgAccountRequired)
	}

	m := Mutation{Command: cmd, Actor: *actor, Before: current.Clone()}

	if save, ok := cmd.(Save); ok && save.Project == "" {
		d, err := save.Draft.Normalize(env.Resolver, env.newID)
		if err != nil {
			return Mutation{}, err
		}
		m.After = project.New(env.newID(), d, *actor, env.now())
		return m, nil
	}

	if current == nil {
		return Mutation{}, fmt.Errorf("project %s: %w", cmd.ProjectID(), domain.ErrNotFound)
	}

	next := current.Clone()
	var err error

	switch c := cmd.(type) {
	case Join:
		err = join(env, next, actor, c)
	case Leave:
		err = next.Leave(actor.ID)
	case SendRequest:
		err = sendRequest(env, next, actor, c)
	case RespondRequest:
		if err = requireLeader(next, actor, "answer requests"); err == nil {
			err = next.Respond(c.RequestID, c.Status)
		}
	case Save:
		err = edit(env, next, actor, c)
	case Delete:
		if err = requireLeader(next, actor, "delete"); err == nil {
			next = nil
		}
	default:
		err = fmt.Errorf("unsupported command %T: %w", cmd, domain.ErrValidation)
	}
	if err != nil {
		return Mutation{}, err
	}

	if next != nil {
		next.UpdatedAt = env.now()
	}
	m.After = next
	return m, nil
}

func join(env Env, p *project.Project, actor *project.UserSnapshot, c Join) error {
	if !project.CanView(p, actor, env.Resolver) {
		return fmt.Errorf("user %s is not eligible for project %s: %w", actor.ID, p.ID, domain.ErrForbidden)
	}
	if p.Visibility == project.VisibilityClosed && !p.IsLeader(actor.ID) {
		return fmt.Errorf("project %s accepts members by request only: %w", p.ID, domain.ErrForbidden)
	}
	return p.Join(*actor, c.RoleID)
}

func sendRequest(env Env, p *project.Project, actor *project.UserSnapshot, c SendRequest) error {
	if !project.CanView(p, actor, env.Resolver) {
		return fmt.Errorf("user %s is not eligible for project %s: %w", actor.ID, p.ID, domain.ErrForbidden)
	}
	return p.AddRequest(project.Request{
		ID:      env.newID(),
		User:    *actor,
		RoleID:  c.RoleID,
		Message: c.Message,
	})
}

func edit(env Env, p *project.Project, actor *project.UserSnapshot, c Save) error {
	if err := requireLeader(p, actor, "edit"); err != nil {
		return err
	}
	d, err := c.Draft.Normalize(env.Resolver, env.newID)
	if err != nil {
		return err
	}
	p.ApplyDraft(d, env.now())
	return nil
}

func requireLeader(p *project.Project, actor *project.UserSnapshot, action string) error {
	if !p.IsLeader(actor.ID) {
		return fmt.Errorf("only the leader of project %s may %s: %w", p.ID, action, domain.ErrForbidden)
	}
	return nil
}

// Step is one entry of a command log.
type Step struct {
	Actor   *project.UserSnapshot
	Command Command
}

// Replay runs steps against a copy of projects in order and returns the
// resulting collection with the mutations that took effect. Rejected steps
// are skipped, exactly as Dispatch would leave state untouched.
func Replay(env Env, projects []*project.Project, steps []Step) ([]*project.Project, []Mutation) {
	order := make([]string, 0, len(projects))
	byID := make(map[string]*project.Project, len(projects))
	for _, p := range projects {
		order = append(order, p.ID)
		byID[p.ID] = p.Clone()
	}

	applied := make([]Mutation, 0, len(steps))
	for _, s := range steps {
		m, err := Apply(env, byID[s.Command.ProjectID()], s.Actor, s.Command)
		if err != nil {
			continue
		}
		applied = append(applied, m)

		switch {
		case m.Before == nil:
			order = append([]string{m.After.ID}, order...)
			byID[m.After.ID] = m.After
		case m.After == nil:
			delete(byID, m.Before.ID)
			order = removeID(order, m.Before.ID)
		default:
			byID[m.After.ID] = m.After
		}
	}

	out := make([]*project.Project, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out, applied
}

func removeID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
