package project

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

func intPtr(v int) *int { return &v }

// sampleProject returns a closed project with two roles, one member and one
// pending request.
func sampleProject() *Project {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Project{
		ID:           "p1",
		Title:        "Campus navigator",
		Description:  "Indoor maps for the main building",
		Tags:         []string{"mobile", "maps"},
		Leader:       UserSnapshot{ID: "lead", FullName: "Lena Leader", UniversityID: "u1", Course: 3},
		LeaderRoleID: "r-lead",
		Roles: []Role{
			{ID: "r-lead", Name: "Lead", RequiredCount: 1, FilledCount: 1},
			{ID: "r1", Name: "Developer", RequiredCount: 2, FilledCount: 0},
		},
		Visibility:          VisibilityClosed,
		AllowedUniversities: []string{"u1"},
		MinCourse:           intPtr(2),
		MaxCourse:           intPtr(4),
		Participants:        []Participant{{UserID: "lead", RoleID: "r-lead"}},
		PendingRequests: []Request{
			{ID: "req1", User: UserSnapshot{ID: "b", FullName: "Boris B"}, RoleID: "r1", Status: RequestPending},
		},
		MaxPeople: 3,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestProject_Clone(t *testing.T) {
	t.Parallel()

	orig := sampleProject()
	c := orig.Clone()

	if !reflect.DeepEqual(orig, c) {
		t.Fatalf("Clone() differs from original")
	}

	c.Tags[0] = "changed"
	c.Roles[1].FilledCount = 2
	c.Participants[0].RoleID = "r1"
	c.PendingRequests[0].Status = RequestDeclined
	c.AllowedUniversities[0] = "u2"
	*c.MinCourse = 1
	*c.MaxCourse = 9

	want := sampleProject()
	if !reflect.DeepEqual(orig, want) {
		t.Errorf("mutating the clone changed the original: %+v", orig)
	}
}

func TestProject_Clone_Nil(t *testing.T) {
	t.Parallel()

	var p *Project
	if got := p.Clone(); got != nil {
		t.Errorf("nil.Clone() = %v, want nil", got)
	}
}

func TestProject_RecountRoles(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	p.Roles[1].RequiredCount = 1
	p.Roles[1].FilledCount = 0
	p.Participants = append(p.Participants,
		Participant{UserID: "x", RoleID: "r1"},
		Participant{UserID: "y", RoleID: "r1"},
	)

	p.RecountRoles()

	if p.Roles[0].FilledCount != 1 {
		t.Errorf("lead FilledCount = %d, want 1", p.Roles[0].FilledCount)
	}
	if p.Roles[1].FilledCount != 1 {
		t.Errorf("developer FilledCount = %d, want clamp to 1", p.Roles[1].FilledCount)
	}
	if p.MaxPeople != 2 {
		t.Errorf("MaxPeople = %d, want 2", p.MaxPeople)
	}
}

func TestProject_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Project)
		wantField string
	}{
		{name: "valid project passes", modify: func(*Project) {}},
		{name: "empty id fails", modify: func(p *Project) { p.ID = "" }, wantField: "id"},
		{name: "unknown visibility fails", modify: func(p *Project) { p.Visibility = "secret" }, wantField: "visibility"},
		{
			name:      "overfilled role fails",
			modify:    func(p *Project) { p.Roles[1].FilledCount = 3 },
			wantField: "roles[1].filled_count",
		},
		{
			name: "duplicate participant fails",
			modify: func(p *Project) {
				p.Participants = append(p.Participants, Participant{UserID: "lead", RoleID: "r1"})
			},
			wantField: "participants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := sampleProject()
			tt.modify(p)
			err := p.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestRequestStatus_IsAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status RequestStatus
		want   bool
	}{
		{RequestAccepted, true},
		{RequestDeclined, true},
		{RequestPending, false},
		{"maybe", false},
	}
	for _, tt := range tests {
		if got := tt.status.IsAnswer(); got != tt.want {
			t.Errorf("RequestStatus(%q).IsAnswer() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
