// Package account holds student profiles registered through the campus app.
package account

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

// Registration rules.
const (
	MinFullNameLength   = 5
	MinGroupLabelLength = 2
	MaxCourse           = 10
	EmailDomain         = "max-user.local"
)

// ScheduleProfile remembers which timetable the student follows.
type ScheduleProfile struct {
	ID    string
	Type  string
	Label string
}

// Account is a registered student.
type Account struct {
	UserID          string
	FullName        string
	Email           string
	UniversityID    string
	UniversityTitle string
	Course          int
	GroupLabel      string
	ScheduleProfile *ScheduleProfile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Snapshot copies the fields projects keep about their members.
func (a *Account) Snapshot() project.UserSnapshot {
	return project.UserSnapshot{
		ID:           a.UserID,
		FullName:     a.FullName,
		University:   a.UniversityTitle,
		UniversityID: a.UniversityID,
		Course:       max(1, a.Course),
		Group:        a.GroupLabel,
	}
}

// Registration is the raw sign-up form.
type Registration struct {
	UserID          string
	FullName        string
	Email           string
	University      string
	Course          string
	GroupLabel      string
	ScheduleProfile *ScheduleProfile
}

// Validate checks the form and returns the normalized course on success.
func (r *Registration) Validate() (int, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(r.UserID) == "" {
		fields["user_id"] = domain.MsgRequired
	}
	if len([]rune(strings.TrimSpace(r.FullName))) < MinFullNameLength {
		fields["full_name"] = "must be at least 5 characters"
	}
	course, ok := NormalizeCourse(r.Course)
	if !ok {
		fields["course"] = "must contain a positive course number"
	}
	if len([]rune(strings.TrimSpace(r.GroupLabel))) < MinGroupLabelLength {
		fields["group_label"] = "must be at least 2 characters"
	}

	return course, domain.FieldsOrNil(fields)
}

// NormalizeCourse keeps only the digits of raw and clamps the number to
// 1..MaxCourse. Inputs without a positive number are rejected.
func NormalizeCourse(raw string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Overflow: a huge positive number still clamps to the top course.
		return MaxCourse, true
	}
	if n <= 0 {
		return 0, false
	}
	return min(n, MaxCourse), true
}

// SanitizeScheduleProfile drops a profile unless id, type and label are all
// present.
func SanitizeScheduleProfile(sp *ScheduleProfile) *ScheduleProfile {
	if sp == nil {
		return nil
	}
	out := ScheduleProfile{
		ID:    strings.TrimSpace(sp.ID),
		Type:  strings.TrimSpace(sp.Type),
		Label: strings.TrimSpace(sp.Label),
	}
	if out.ID == "" || out.Type == "" || out.Label == "" {
		return nil
	}
	return &out
}

// DefaultEmail is the address assigned when a user registers without one.
func DefaultEmail(userID string) string {
	return userID + "@" + EmailDomain
}
