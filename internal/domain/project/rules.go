package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

// Join adds user to the role and marks their requests accepted. A user who is
// already a member is rejected so nobody holds two seats, and so is a role
// with no free seat.
func (p *Project) Join(user UserSnapshot, roleID string) error {
	if p.HasParticipant(user.ID) {
		return fmt.Errorf("user %s already participates in project %s: %w", user.ID, p.ID, domain.ErrConflict)
	}
	idx := p.RoleIndex(roleID)
	if idx < 0 {
		return domain.NewValidationError("role_id", fmt.Sprintf("unknown role %q", roleID))
	}
	if err := p.requireSeat(idx); err != nil {
		return err
	}

	p.Participants = append(p.Participants, Participant{UserID: user.ID, RoleID: roleID})
	p.Roles[idx].FilledCount = min(p.Roles[idx].RequiredCount, p.Roles[idx].FilledCount+1)

	for i := range p.PendingRequests {
		if p.PendingRequests[i].User.ID == user.ID {
			p.PendingRequests[i].Status = RequestAccepted
		}
	}
	return nil
}

// Leave removes userID from the team and frees their seat.
func (p *Project) Leave(userID string) error {
	if !p.HasParticipant(userID) {
		return fmt.Errorf("user %s is not a participant of project %s: %w", userID, p.ID, domain.ErrConflict)
	}

	kept := p.Participants[:0:0]
	for _, part := range p.Participants {
		if part.UserID != userID {
			kept = append(kept, part)
			continue
		}
		if idx := p.RoleIndex(part.RoleID); idx >= 0 {
			p.Roles[idx].FilledCount = max(0, p.Roles[idx].FilledCount-1)
		}
	}
	p.Participants = kept
	return nil
}

// AddRequest appends a pending request. Members and users with a request
// still waiting for an answer cannot apply again.
func (p *Project) AddRequest(req Request) error {
	idx := p.RoleIndex(req.RoleID)
	if idx < 0 {
		return domain.NewValidationError("role_id", fmt.Sprintf("unknown role %q", req.RoleID))
	}
	if err := p.requireSeat(idx); err != nil {
		return err
	}
	if p.HasParticipant(req.User.ID) {
		return fmt.Errorf("user %s already participates in project %s: %w", req.User.ID, p.ID, domain.ErrConflict)
	}
	for _, existing := range p.PendingRequests {
		if existing.User.ID == req.User.ID && existing.Status == RequestPending {
			return fmt.Errorf("user %s already has a pending request in project %s: %w", req.User.ID, p.ID, domain.ErrConflict)
		}
	}

	req.Message = strings.TrimSpace(req.Message)
	req.Status = RequestPending
	p.PendingRequests = append(p.PendingRequests, req)
	return nil
}

// Respond answers a request. Accepting adds the requester under the
// requested role unless they are already a member, so repeated accepts are
// harmless.
func (p *Project) Respond(requestID string, status RequestStatus) error {
	if !status.IsAnswer() {
		return domain.NewValidationError("status", fmt.Sprintf("must be %q or %q, got %q", RequestAccepted, RequestDeclined, status))
	}
	idx := p.RequestIndex(requestID)
	if idx < 0 {
		return fmt.Errorf("request %s in project %s: %w", requestID, p.ID, domain.ErrNotFound)
	}

	req := p.PendingRequests[idx]
	if status == RequestAccepted && !p.HasParticipant(req.User.ID) {
		r := p.RoleIndex(req.RoleID)
		if r < 0 {
			return domain.NewValidationError("role_id", fmt.Sprintf("unknown role %q", req.RoleID))
		}
		if err := p.requireSeat(r); err != nil {
			return err
		}
		p.Participants = append(p.Participants, Participant{UserID: req.User.ID, RoleID: req.RoleID})
		p.Roles[r].FilledCount = min(p.Roles[r].RequiredCount, p.Roles[r].FilledCount+1)
	}
	p.PendingRequests[idx].Status = status
	return nil
}

func (p *Project) requireSeat(roleIdx int) error {
	if r := p.Roles[roleIdx]; !r.HasCapacity() {
		return fmt.Errorf("role %s in project %s has no free seats: %w", r.ID, p.ID, domain.ErrConflict)
	}
	return nil
}

// New builds a project from a normalized draft. The leader takes the leader
// role as the first participant when one is chosen.
func New(id string, d Draft, leader UserSnapshot, now time.Time) *Project {
	p := &Project{
		ID:                  id,
		Title:               d.Title,
		Description:         d.Description,
		Tags:                cloneSlice(d.Tags),
		Leader:              leader,
		LeaderRoleID:        d.LeaderRoleID,
		Roles:               cloneSlice(d.Roles),
		Visibility:          d.Visibility,
		AllowedUniversities: cloneSlice(d.AllowedUniversities),
		MinCourse:           cloneInt(d.MinCourse),
		MaxCourse:           cloneInt(d.MaxCourse),
		Participants:        []Participant{},
		PendingRequests:     []Request{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if p.LeaderRoleID != "" {
		p.Participants = append(p.Participants, Participant{UserID: leader.ID, RoleID: p.LeaderRoleID})
	}
	p.RecountRoles()
	return p
}

// ApplyDraft replaces the editable fields with d. Every member except the
// leader keeps their seat; the leader is re-seated under the new leader role
// and all counts are recomputed from the resulting member list.
func (p *Project) ApplyDraft(d Draft, now time.Time) {
	p.Title = d.Title
	p.Description = d.Description
	p.Tags = cloneSlice(d.Tags)
	p.Roles = cloneSlice(d.Roles)
	p.Visibility = d.Visibility
	p.AllowedUniversities = cloneSlice(d.AllowedUniversities)
	p.MinCourse = cloneInt(d.MinCourse)
	p.MaxCourse = cloneInt(d.MaxCourse)
	p.LeaderRoleID = d.LeaderRoleID

	members := make([]Participant, 0, len(p.Participants)+1)
	for _, part := range p.Participants {
		if part.UserID != p.Leader.ID {
			members = append(members, part)
		}
	}
	if p.LeaderRoleID != "" {
		members = append(members, Participant{UserID: p.Leader.ID, RoleID: p.LeaderRoleID})
	}
	p.Participants = members
	p.UpdatedAt = now
	p.RecountRoles()
}
