package collab_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/app/collab"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

func testEnv() collab.Env {
	return collab.Env{
		Resolver: resolver,
		Now:      func() time.Time { return fixedNow },
		NewID:    sequentialIDs(),
	}
}

func TestApply_DoesNotTouchInput(t *testing.T) {
	t.Parallel()

	p := fixture()
	orig := p.Clone()

	m, err := collab.Apply(testEnv(), &p, student("s1", 2), collab.Join{Project: "p1", RoleID: "dev"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !reflect.DeepEqual(&p, orig) {
		t.Error("Apply() modified its input project")
	}
	if !reflect.DeepEqual(m.Before, orig) {
		t.Error("Mutation.Before is not the prior state")
	}
	if !m.After.HasParticipant("s1") {
		t.Error("Mutation.After is missing the new participant")
	}
}

func TestApply_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  collab.Command
		want collab.Kind
	}{
		{cmd: collab.Join{Project: "p1"}, want: collab.KindJoin},
		{cmd: collab.Leave{Project: "p1"}, want: collab.KindLeave},
		{cmd: collab.SendRequest{Project: "p1"}, want: collab.KindRequest},
		{cmd: collab.RespondRequest{Project: "p1"}, want: collab.KindRespond},
		{cmd: collab.Save{}, want: collab.KindCreate},
		{cmd: collab.Save{Project: "p1"}, want: collab.KindUpdate},
		{cmd: collab.Delete{Project: "p1"}, want: collab.KindDelete},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			t.Parallel()
			if got := tt.cmd.Kind(); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_RespondRejectsPendingStatus(t *testing.T) {
	t.Parallel()

	p := fixture()
	p.PendingRequests = []project.Request{{ID: "r1", User: *student("s1", 2), RoleID: "dev", Status: project.RequestPending}}

	_, err := collab.Apply(testEnv(), &p, &leader,
		collab.RespondRequest{Project: "p1", RequestID: "r1", Status: project.RequestPending})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Apply() error = %v, want ErrValidation", err)
	}
}

func TestApply_DeclineThenRequestAgain(t *testing.T) {
	t.Parallel()

	p := fixture()
	p.PendingRequests = []project.Request{{ID: "r1", User: *student("s1", 2), RoleID: "dev", Status: project.RequestDeclined}}

	m, err := collab.Apply(testEnv(), &p, student("s1", 2), collab.SendRequest{Project: "p1", RoleID: "dev"})
	if err != nil {
		t.Fatalf("Apply() error = %v, want a new request after a decline", err)
	}
	if len(m.After.PendingRequests) != 2 {
		t.Errorf("len(PendingRequests) = %d, want 2", len(m.After.PendingRequests))
	}
}

func TestReplay_Deterministic(t *testing.T) {
	t.Parallel()

	s1, s2 := student("s1", 2), student("s2", 3)
	steps := []collab.Step{
		{Actor: s1, Command: collab.Join{Project: "p1", RoleID: "dev"}},
		{Actor: s1, Command: collab.Join{Project: "p1", RoleID: "dev"}},
		{Actor: s2, Command: collab.SendRequest{Project: "p1", RoleID: "dev", Message: "hi"}},
		{Actor: &leader, Command: collab.RespondRequest{Project: "p1", RequestID: "id-1", Status: project.RequestAccepted}},
		{Actor: s1, Command: collab.Leave{Project: "p1"}},
		{Actor: &leader, Command: collab.Save{Draft: project.Draft{
			Title:               "Second",
			Roles:               []project.Role{{ID: "r", Name: "Any", RequiredCount: 2}},
			AllowedUniversities: []string{"fa"},
		}}},
	}

	first, applied := collab.Replay(testEnv(), []*project.Project{ptr(fixture())}, steps)
	second, _ := collab.Replay(testEnv(), []*project.Project{ptr(fixture())}, steps)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two replays of the same log differ")
	}
	if len(applied) != 5 {
		t.Errorf("applied = %d mutations, want 5 (duplicate join skipped)", len(applied))
	}
	if len(first) != 2 || first[0].ID != "id-2" {
		t.Fatalf("replayed ids = %v, want created project first", ids(first))
	}

	p1 := first[1]
	if p1.HasParticipant("s1") || !p1.HasParticipant("s2") {
		t.Errorf("participants = %v, want s2 only besides the leader", p1.Participants)
	}
	if p1.Roles[1].FilledCount != 1 {
		t.Errorf("dev FilledCount = %d, want 1", p1.Roles[1].FilledCount)
	}
}

func TestReplay_InvariantsHoldAfterEveryStep(t *testing.T) {
	t.Parallel()

	var steps []collab.Step
	for _, id := range []string{"a", "b", "c", "d"} {
		steps = append(steps,
			collab.Step{Actor: student(id, 2), Command: collab.Join{Project: "p1", RoleID: "dev"}},
			collab.Step{Actor: student(id, 2), Command: collab.Join{Project: "p1", RoleID: "dev"}},
		)
	}
	steps = append(steps, collab.Step{Actor: student("a", 2), Command: collab.Leave{Project: "p1"}})

	_, applied := collab.Replay(testEnv(), []*project.Project{ptr(fixture())}, steps)
	for i, m := range applied {
		if err := m.After.Validate(); err != nil {
			t.Errorf("step %d: %v", i, err)
		}
	}
}

func ptr(p project.Project) *project.Project { return &p }
