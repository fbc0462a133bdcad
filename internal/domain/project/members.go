package project

// Placeholder profile values for members whose snapshot is unknown.
const (
	UnknownMemberName       = "Member"
	UnknownMemberUniversity = "University"
)

// Viewer describes a project from one user's point of view.
type Viewer struct {
	IsLeader      bool
	IsParticipant bool
	RoleID        string
	Request       *Request
	OpenRoles     []Role
}

// ViewerState computes what userID can do with p. Request is the user's most
// recent request, if any.
func (p *Project) ViewerState(userID string) Viewer {
	v := Viewer{IsLeader: p.IsLeader(userID)}
	if idx := p.ParticipantIndex(userID); idx >= 0 {
		v.IsParticipant = true
		v.RoleID = p.Participants[idx].RoleID
	}
	for i := len(p.PendingRequests) - 1; i >= 0; i-- {
		if p.PendingRequests[i].User.ID == userID && userID != "" {
			req := p.PendingRequests[i]
			v.Request = &req
			break
		}
	}
	for _, r := range p.Roles {
		if r.HasCapacity() {
			v.OpenRoles = append(v.OpenRoles, r)
		}
	}
	return v
}

// Directory collects every user snapshot known from projects, keyed by user
// id. current, when set, wins over older snapshots of the same user.
func Directory(projects []*Project, current *UserSnapshot) map[string]UserSnapshot {
	dir := make(map[string]UserSnapshot)
	for _, p := range projects {
		if p.Leader.ID != "" {
			dir[p.Leader.ID] = p.Leader
		}
		for _, r := range p.PendingRequests {
			if r.User.ID != "" {
				dir[r.User.ID] = r.User
			}
		}
	}
	if current != nil && current.ID != "" {
		dir[current.ID] = *current
	}
	return dir
}

// Profile returns the snapshot for userID, or a placeholder when unknown.
func Profile(dir map[string]UserSnapshot, userID string) UserSnapshot {
	if u, ok := dir[userID]; ok {
		return u
	}
	return UserSnapshot{ID: userID, FullName: UnknownMemberName, University: UnknownMemberUniversity}
}
