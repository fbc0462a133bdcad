package account

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

func TestNormalizeCourse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "3", want: 3, wantOK: true},
		{in: "3 курс", want: 3, wantOK: true},
		{in: "course #2", want: 2, wantOK: true},
		{in: "15", want: 10, wantOK: true},
		{in: "0", wantOK: false},
		{in: "", wantOK: false},
		{in: "first", wantOK: false},
		{in: "99999999999999999999999", want: 10, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := NormalizeCourse(tt.in)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("NormalizeCourse(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRegistration_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Registration {
		return Registration{UserID: "42", FullName: "Ivan Petrov", Course: "2", GroupLabel: "PI-21"}
	}

	tests := []struct {
		name      string
		modify    func(*Registration)
		wantField string
	}{
		{name: "valid", modify: func(*Registration) {}},
		{name: "missing user id", modify: func(r *Registration) { r.UserID = " " }, wantField: "user_id"},
		{name: "short name", modify: func(r *Registration) { r.FullName = " Ivan " }, wantField: "full_name"},
		{name: "bad course", modify: func(r *Registration) { r.Course = "zero" }, wantField: "course"},
		{name: "short group", modify: func(r *Registration) { r.GroupLabel = "P" }, wantField: "group_label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := valid()
			tt.modify(&r)
			course, err := r.Validate()

			if tt.wantField == "" {
				if err != nil || course != 2 {
					t.Errorf("Validate() = %d, %v; want 2, nil", course, err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, missing %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestSanitizeScheduleProfile(t *testing.T) {
	t.Parallel()

	if got := SanitizeScheduleProfile(nil); got != nil {
		t.Errorf("SanitizeScheduleProfile(nil) = %+v", got)
	}
	if got := SanitizeScheduleProfile(&ScheduleProfile{ID: "1", Type: "group"}); got != nil {
		t.Errorf("incomplete profile kept: %+v", got)
	}
	got := SanitizeScheduleProfile(&ScheduleProfile{ID: " 1 ", Type: "group", Label: "PI-21"})
	if got == nil || got.ID != "1" || got.Label != "PI-21" {
		t.Errorf("SanitizeScheduleProfile() = %+v", got)
	}
}

func TestAccount_Snapshot(t *testing.T) {
	t.Parallel()

	a := &Account{UserID: "7", FullName: "Anna Smirnova", UniversityID: "fu", UniversityTitle: "FU", GroupLabel: "BI-1"}
	s := a.Snapshot()

	if s.ID != "7" || s.UniversityID != "fu" || s.University != "FU" || s.Group != "BI-1" {
		t.Errorf("Snapshot() = %+v", s)
	}
	if s.Course != 1 {
		t.Errorf("Snapshot().Course = %d, want 1 for unset course", s.Course)
	}
	if DefaultEmail("7") != "7@max-user.local" {
		t.Errorf("DefaultEmail() = %q", DefaultEmail("7"))
	}
}
