package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

func intPtr(i int) *int { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validDraftRequest() dto.ProjectDraftRequest {
	return dto.ProjectDraftRequest{
		Title:               "Hackathon team",
		Description:         "Build a bot",
		Tags:                []string{"ai"},
		Roles:               []dto.RoleRequest{{Name: "Backend", RequiredCount: 2}},
		Visibility:          "closed",
		AllowedUniversities: []string{"financial-university"},
		MinCourse:           intPtr(1),
		MaxCourse:           intPtr(4),
	}
}

func TestProjectDraftRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*dto.ProjectDraftRequest)
		wantField string
	}{
		{name: "valid request passes", modify: func(*dto.ProjectDraftRequest) {}},
		{name: "visibility may be omitted", modify: func(r *dto.ProjectDraftRequest) { r.Visibility = "" }},
		{name: "blank title", modify: func(r *dto.ProjectDraftRequest) { r.Title = "  " }, wantField: "title"},
		{name: "long title", modify: func(r *dto.ProjectDraftRequest) { r.Title = strings.Repeat("x", 201) }, wantField: "title"},
		{name: "unknown visibility", modify: func(r *dto.ProjectDraftRequest) { r.Visibility = "hidden" }, wantField: "visibility"},
		{name: "no universities", modify: func(r *dto.ProjectDraftRequest) { r.AllowedUniversities = nil }, wantField: "allowed_universities"},
		{name: "course below range", modify: func(r *dto.ProjectDraftRequest) { r.MinCourse = intPtr(0) }, wantField: "min_course"},
		{name: "course above range", modify: func(r *dto.ProjectDraftRequest) { r.MaxCourse = intPtr(11) }, wantField: "max_course"},
		{name: "nameless role", modify: func(r *dto.ProjectDraftRequest) { r.Roles[0].Name = "" }, wantField: "roles[0].name"},
		{name: "long tag", modify: func(r *dto.ProjectDraftRequest) { r.Tags = []string{strings.Repeat("t", 41)} }, wantField: "tags[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validDraftRequest()
			tt.modify(&req)
			err := req.Validate()
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

func TestProjectDraftRequest_ToDraft(t *testing.T) {
	t.Parallel()

	req := validDraftRequest()
	req.LeaderRoleID = " lead "
	req.Roles[0].ID = " be "

	got := req.ToDraft()
	if got.Title != req.Title || got.Visibility != project.VisibilityClosed {
		t.Errorf("ToDraft() = %+v", got)
	}
	if got.LeaderRoleID != "lead" || got.Roles[0].ID != "be" {
		t.Errorf("ids not trimmed: leader %q role %q", got.LeaderRoleID, got.Roles[0].ID)
	}
	if *got.MaxCourse != 4 || got.Roles[0].RequiredCount != 2 {
		t.Errorf("ToDraft() lost counts: %+v", got)
	}
}

func TestMembershipRequests_Validate(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.JoinRequest{RoleID: " "}).Validate(), "role_id")
	requireValidationField(t, (&dto.SendRequestRequest{RoleID: ""}).Validate(), "role_id")
	requireValidationField(t, (&dto.SendRequestRequest{RoleID: "r", Message: strings.Repeat("m", 2001)}).Validate(), "message")
	requireValidationField(t, (&dto.RespondRequest{Status: "pending"}).Validate(), "status")

	if err := (&dto.JoinRequest{RoleID: "r"}).Validate(); err != nil {
		t.Errorf("JoinRequest.Validate() = %v, want nil", err)
	}
	if err := (&dto.RespondRequest{Status: "declined"}).Validate(); err != nil {
		t.Errorf("RespondRequest.Validate() = %v, want nil", err)
	}
}

func TestRegisterRequest(t *testing.T) {
	t.Parallel()

	t.Run("course as number or string", func(t *testing.T) {
		t.Parallel()

		for body, want := range map[string]string{
			`{"user_id":"u","course":3}`:        "3",
			`{"user_id":"u","course":"2 курс"}`: "2 курс",
			`{"user_id":"u","course":null}`:     "",
		} {
			var req dto.RegisterRequest
			if err := json.Unmarshal([]byte(body), &req); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", body, err)
			}
			if got := req.ToRegistration().Course; got != want {
				t.Errorf("Course from %s = %q, want %q", body, got, want)
			}
		}
	})

	t.Run("rejects bad course payload", func(t *testing.T) {
		t.Parallel()

		var req dto.RegisterRequest
		if err := json.Unmarshal([]byte(`{"course":{}}`), &req); err == nil {
			t.Error("Unmarshal() error = nil, want error")
		}
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		requireValidationField(t, (&dto.RegisterRequest{}).Validate(), "user_id")
		requireValidationField(t, (&dto.RegisterRequest{UserID: "u", Email: "not-mail"}).Validate(), "email")
		if err := (&dto.RegisterRequest{UserID: "u"}).Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("maps schedule profile", func(t *testing.T) {
		t.Parallel()

		req := dto.RegisterRequest{
			UserID:          " u1 ",
			ScheduleProfile: &dto.ScheduleProfileRequest{ID: "101", Type: "group", Label: "ПИ21-1"},
		}
		reg := req.ToRegistration()
		if reg.UserID != "u1" || reg.ScheduleProfile == nil || reg.ScheduleProfile.Label != "ПИ21-1" {
			t.Errorf("ToRegistration() = %+v", reg)
		}
	})
}
