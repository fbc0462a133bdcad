package project

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

func openProject() *Project {
	return &Project{
		ID:         "p1",
		Roles:      []Role{{ID: "r1", Name: "Dev", RequiredCount: 2, FilledCount: 0}},
		Visibility: VisibilityOpen,
	}
}

func TestProject_JoinThenLeave(t *testing.T) {
	t.Parallel()

	p := openProject()
	a := UserSnapshot{ID: "A"}

	if err := p.Join(a, "r1"); err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if p.Roles[0].FilledCount != 1 {
		t.Errorf("FilledCount after join = %d, want 1", p.Roles[0].FilledCount)
	}
	want := []Participant{{UserID: "A", RoleID: "r1"}}
	if !reflect.DeepEqual(p.Participants, want) {
		t.Errorf("Participants = %v, want %v", p.Participants, want)
	}

	if err := p.Leave("A"); err != nil {
		t.Fatalf("Leave() error = %v", err)
	}
	if p.Roles[0].FilledCount != 0 {
		t.Errorf("FilledCount after leave = %d, want 0", p.Roles[0].FilledCount)
	}
	if len(p.Participants) != 0 {
		t.Errorf("Participants after leave = %v, want empty", p.Participants)
	}
}

func TestProject_Join_Duplicate(t *testing.T) {
	t.Parallel()

	p := openProject()
	a := UserSnapshot{ID: "A"}
	if err := p.Join(a, "r1"); err != nil {
		t.Fatalf("first Join() error = %v", err)
	}

	err := p.Join(a, "r1")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("second Join() error = %v, want ErrConflict", err)
	}
	if len(p.Participants) != 1 {
		t.Errorf("len(Participants) = %d, want 1", len(p.Participants))
	}
	if p.Roles[0].FilledCount != 1 {
		t.Errorf("FilledCount = %d, want 1", p.Roles[0].FilledCount)
	}
}

func TestProject_Join_UnknownRole(t *testing.T) {
	t.Parallel()

	p := openProject()
	err := p.Join(UserSnapshot{ID: "A"}, "nope")

	requireValidationField(t, err, "role_id")
	if len(p.Participants) != 0 {
		t.Errorf("Participants = %v, want empty", p.Participants)
	}
}

func TestProject_Join_AcceptsOwnRequests(t *testing.T) {
	t.Parallel()

	p := openProject()
	p.PendingRequests = []Request{
		{ID: "q1", User: UserSnapshot{ID: "A"}, RoleID: "r1", Status: RequestPending},
		{ID: "q2", User: UserSnapshot{ID: "B"}, RoleID: "r1", Status: RequestPending},
	}

	if err := p.Join(UserSnapshot{ID: "A"}, "r1"); err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if p.PendingRequests[0].Status != RequestAccepted {
		t.Errorf("A's request status = %q, want accepted", p.PendingRequests[0].Status)
	}
	if p.PendingRequests[1].Status != RequestPending {
		t.Errorf("B's request status = %q, want pending", p.PendingRequests[1].Status)
	}
}

// fullProject has role r1 with its only seat taken by A and a pending
// request from C.
func fullProject() *Project {
	p := openProject()
	p.Roles[0].RequiredCount = 1
	p.Roles[0].FilledCount = 1
	p.Participants = []Participant{{UserID: "A", RoleID: "r1"}}
	p.PendingRequests = []Request{{ID: "q1", User: UserSnapshot{ID: "C"}, RoleID: "r1", Status: RequestPending}}
	return p
}

func TestProject_FullRoleRejectsNewMembers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   func(p *Project) error
	}{
		{"join", func(p *Project) error { return p.Join(UserSnapshot{ID: "B"}, "r1") }},
		{"accept request", func(p *Project) error { return p.Respond("q1", RequestAccepted) }},
		{"send request", func(p *Project) error {
			return p.AddRequest(Request{ID: "q2", User: UserSnapshot{ID: "D"}, RoleID: "r1"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := fullProject()
			before := p.Clone()

			if err := tt.op(p); !errors.Is(err, domain.ErrConflict) {
				t.Fatalf("error = %v, want ErrConflict", err)
			}
			if !reflect.DeepEqual(p, before) {
				t.Errorf("project changed after rejection: participants=%v requests=%v filled=%d",
					p.Participants, p.PendingRequests, p.Roles[0].FilledCount)
			}
		})
	}
}

func TestProject_FullRoleStillDeclines(t *testing.T) {
	t.Parallel()

	p := fullProject()
	if err := p.Respond("q1", RequestDeclined); err != nil {
		t.Fatalf("Respond(declined) error = %v", err)
	}
	if p.PendingRequests[0].Status != RequestDeclined {
		t.Errorf("status = %q, want declined", p.PendingRequests[0].Status)
	}
}

func TestProject_Leave_NotParticipant(t *testing.T) {
	t.Parallel()

	p := openProject()
	if err := p.Leave("ghost"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Leave() error = %v, want ErrConflict", err)
	}
}

func TestProject_Leave_FloorsAtZero(t *testing.T) {
	t.Parallel()

	p := openProject()
	p.Participants = []Participant{{UserID: "A", RoleID: "r1"}}
	p.Roles[0].FilledCount = 0

	if err := p.Leave("A"); err != nil {
		t.Fatalf("Leave() error = %v", err)
	}
	if p.Roles[0].FilledCount != 0 {
		t.Errorf("FilledCount = %d, want 0", p.Roles[0].FilledCount)
	}
}

func TestProject_RequestAcceptIsIdempotent(t *testing.T) {
	t.Parallel()

	p := openProject()
	p.Visibility = VisibilityClosed
	u := UserSnapshot{ID: "U", FullName: "Uma"}

	if err := p.AddRequest(Request{ID: "q1", User: u, RoleID: "r1", Message: "  hi  "}); err != nil {
		t.Fatalf("AddRequest() error = %v", err)
	}
	if got := p.PendingRequests[0]; got.Status != RequestPending || got.Message != "hi" {
		t.Errorf("request = %+v, want pending with trimmed message", got)
	}

	for i := 0; i < 2; i++ {
		if err := p.Respond("q1", RequestAccepted); err != nil {
			t.Fatalf("Respond() #%d error = %v", i+1, err)
		}
	}

	if p.PendingRequests[0].Status != RequestAccepted {
		t.Errorf("status = %q, want accepted", p.PendingRequests[0].Status)
	}
	want := []Participant{{UserID: "U", RoleID: "r1"}}
	if !reflect.DeepEqual(p.Participants, want) {
		t.Errorf("Participants = %v, want %v", p.Participants, want)
	}
	if p.Roles[0].FilledCount != 1 {
		t.Errorf("FilledCount = %d, want 1", p.Roles[0].FilledCount)
	}
}

func TestProject_AddRequest_Guards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(*Project)
		req     Request
		wantErr error
	}{
		{
			name:    "unknown role",
			req:     Request{ID: "q", User: UserSnapshot{ID: "U"}, RoleID: "zzz"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "already a member",
			setup:   func(p *Project) { p.Participants = []Participant{{UserID: "U", RoleID: "r1"}} },
			req:     Request{ID: "q", User: UserSnapshot{ID: "U"}, RoleID: "r1"},
			wantErr: domain.ErrConflict,
		},
		{
			name: "pending request exists",
			setup: func(p *Project) {
				p.PendingRequests = []Request{{ID: "old", User: UserSnapshot{ID: "U"}, RoleID: "r1", Status: RequestPending}}
			},
			req:     Request{ID: "q", User: UserSnapshot{ID: "U"}, RoleID: "r1"},
			wantErr: domain.ErrConflict,
		},
		{
			name: "declined request allows a new one",
			setup: func(p *Project) {
				p.PendingRequests = []Request{{ID: "old", User: UserSnapshot{ID: "U"}, RoleID: "r1", Status: RequestDeclined}}
			},
			req: Request{ID: "q", User: UserSnapshot{ID: "U"}, RoleID: "r1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := openProject()
			if tt.setup != nil {
				tt.setup(p)
			}
			err := p.AddRequest(tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("AddRequest() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddRequest() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProject_Respond_Errors(t *testing.T) {
	t.Parallel()

	p := sampleProject()

	if err := p.Respond("missing", RequestAccepted); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Respond(missing) error = %v, want ErrNotFound", err)
	}
	requireValidationField(t, p.Respond("req1", RequestPending), "status")
}

func TestProject_Respond_Decline(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	if err := p.Respond("req1", RequestDeclined); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if p.PendingRequests[0].Status != RequestDeclined {
		t.Errorf("status = %q, want declined", p.PendingRequests[0].Status)
	}
	if p.HasParticipant("b") {
		t.Errorf("declined requester became a participant")
	}
}

func TestNew_SeatsLeader(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	d := Draft{
		Title:               "Robotics",
		Visibility:          VisibilityOpen,
		AllowedUniversities: []string{"u1"},
		Roles: []Role{
			{ID: "lead", Name: "Lead", RequiredCount: 1, FilledCount: 1},
			{ID: "dev", Name: "Dev", RequiredCount: 3, FilledCount: 2},
		},
		LeaderRoleID: "lead",
	}
	leader := UserSnapshot{ID: "L"}

	p := New("p9", d, leader, now)

	if p.Roles[0].FilledCount != 1 || p.Roles[1].FilledCount != 0 {
		t.Errorf("FilledCounts = %d,%d, want 1,0", p.Roles[0].FilledCount, p.Roles[1].FilledCount)
	}
	want := []Participant{{UserID: "L", RoleID: "lead"}}
	if !reflect.DeepEqual(p.Participants, want) {
		t.Errorf("Participants = %v, want %v", p.Participants, want)
	}
	if p.MaxPeople != 4 {
		t.Errorf("MaxPeople = %d, want 4", p.MaxPeople)
	}
	if len(p.PendingRequests) != 0 {
		t.Errorf("PendingRequests = %v, want empty", p.PendingRequests)
	}
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v/%v, want %v", p.CreatedAt, p.UpdatedAt, now)
	}
}

func TestNew_WithoutLeaderRole(t *testing.T) {
	t.Parallel()

	d := Draft{Title: "Solo", Roles: []Role{{ID: "r", Name: "Any", RequiredCount: 2}}}
	p := New("p", d, UserSnapshot{ID: "L"}, time.Now())

	if len(p.Participants) != 0 {
		t.Errorf("Participants = %v, want empty", p.Participants)
	}
	if p.Roles[0].FilledCount != 0 {
		t.Errorf("FilledCount = %d, want 0", p.Roles[0].FilledCount)
	}
}

func TestProject_ApplyDraft_ReseatsLeaderAndRecounts(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	p.Participants = append(p.Participants,
		Participant{UserID: "x", RoleID: "r1"},
		Participant{UserID: "y", RoleID: "r1"},
	)
	p.Roles[1].FilledCount = 2
	created := p.CreatedAt
	later := created.Add(time.Hour)

	d := Draft{
		Title:               "Renamed",
		Visibility:          VisibilityOpen,
		AllowedUniversities: []string{"u1"},
		Roles: []Role{
			{ID: "r-lead", Name: "Lead", RequiredCount: 1, FilledCount: 0},
			{ID: "r1", Name: "Developer", RequiredCount: 3, FilledCount: 0},
		},
		LeaderRoleID: "r1",
	}
	p.ApplyDraft(d, later)

	wantParts := []Participant{
		{UserID: "x", RoleID: "r1"},
		{UserID: "y", RoleID: "r1"},
		{UserID: "lead", RoleID: "r1"},
	}
	if !reflect.DeepEqual(p.Participants, wantParts) {
		t.Errorf("Participants = %v, want %v", p.Participants, wantParts)
	}
	if p.Roles[0].FilledCount != 0 || p.Roles[1].FilledCount != 3 {
		t.Errorf("FilledCounts = %d,%d, want 0,3", p.Roles[0].FilledCount, p.Roles[1].FilledCount)
	}
	if p.MaxPeople != 4 {
		t.Errorf("MaxPeople = %d, want 4", p.MaxPeople)
	}
	if !p.CreatedAt.Equal(created) || !p.UpdatedAt.Equal(later) {
		t.Errorf("timestamps = %v/%v", p.CreatedAt, p.UpdatedAt)
	}
	if p.Title != "Renamed" || p.Visibility != VisibilityOpen {
		t.Errorf("fields not replaced: %+v", p)
	}
}

// Any sequence of member operations keeps every role within its bounds.
func TestProject_ClampInvariant(t *testing.T) {
	t.Parallel()

	p := openProject()
	p.Roles[0].RequiredCount = 1
	ops := []func(){
		func() { _ = p.Join(UserSnapshot{ID: "a"}, "r1") },
		func() { _ = p.Join(UserSnapshot{ID: "b"}, "r1") },
		func() { _ = p.AddRequest(Request{ID: "q", User: UserSnapshot{ID: "c"}, RoleID: "r1"}) },
		func() { _ = p.Respond("q", RequestAccepted) },
		func() { _ = p.Leave("a") },
		func() { _ = p.Leave("b") },
		func() { _ = p.Leave("c") },
		func() { _ = p.Leave("c") },
	}

	for i, op := range ops {
		op()
		for _, r := range p.Roles {
			if r.FilledCount < 0 || r.FilledCount > r.RequiredCount {
				t.Fatalf("after op %d role %s FilledCount = %d, want 0..%d", i, r.ID, r.FilledCount, r.RequiredCount)
			}
			seated := 0
			for _, part := range p.Participants {
				if part.RoleID == r.ID {
					seated++
				}
			}
			if seated != r.FilledCount {
				t.Fatalf("after op %d role %s has %d participants, FilledCount = %d", i, r.ID, seated, r.FilledCount)
			}
		}
	}
}
