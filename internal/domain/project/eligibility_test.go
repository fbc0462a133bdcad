package project

import "testing"

func TestCanView(t *testing.T) {
	t.Parallel()

	restricted := &Project{
		ID:                  "p",
		AllowedUniversities: []string{"u1"},
		MinCourse:           intPtr(2),
		MaxCourse:           intPtr(4),
	}
	byTitle := &Project{ID: "t", AllowedUniversities: []string{"First University"}}
	raw := &Project{ID: "r", AllowedUniversities: []string{"Unlisted College"}}
	open := &Project{ID: "o"}

	tests := []struct {
		name    string
		project *Project
		user    *UserSnapshot
		want    bool
	}{
		{name: "browse mode sees everything", project: restricted, user: nil, want: true},
		{name: "eligible user", project: restricted, user: &UserSnapshot{UniversityID: "u1", Course: 3}, want: true},
		{name: "course above max", project: restricted, user: &UserSnapshot{UniversityID: "u1", Course: 5}, want: false},
		{name: "course below min", project: restricted, user: &UserSnapshot{UniversityID: "u1", Course: 1}, want: false},
		{name: "other university", project: restricted, user: &UserSnapshot{UniversityID: "u2", Course: 3}, want: false},
		{name: "no university", project: restricted, user: &UserSnapshot{Course: 3}, want: false},
		{name: "user university given by alias", project: restricted, user: &UserSnapshot{UniversityID: "FU", Course: 3}, want: true},
		{name: "restriction given by title", project: byTitle, user: &UserSnapshot{UniversityID: "u1"}, want: true},
		{name: "unresolvable entry compared raw", project: raw, user: &UserSnapshot{UniversityID: "Unlisted College"}, want: true},
		{name: "unresolvable entry mismatch", project: raw, user: &UserSnapshot{UniversityID: "u1"}, want: false},
		{name: "unrestricted project", project: open, user: &UserSnapshot{Course: 9}, want: true},
		{name: "nil project", project: nil, user: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CanView(tt.project, tt.user, newResolver()); got != tt.want {
				t.Errorf("CanView() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanView_NilResolver(t *testing.T) {
	t.Parallel()

	p := &Project{AllowedUniversities: []string{"u1"}}
	if !CanView(p, &UserSnapshot{UniversityID: "u1"}, nil) {
		t.Errorf("CanView() with nil resolver = false, want raw match")
	}
}

// Raising the course keeps a project visible until it passes MaxCourse.
func TestCanView_CourseMonotonicity(t *testing.T) {
	t.Parallel()

	p := &Project{MinCourse: intPtr(2), MaxCourse: intPtr(4)}
	u := &UserSnapshot{Course: 2}

	for course := 2; course <= 4; course++ {
		u.Course = course
		if !CanView(p, u, nil) {
			t.Fatalf("course %d: CanView() = false, want true", course)
		}
	}
	u.Course = 5
	if CanView(p, u, nil) {
		t.Errorf("course 5: CanView() = true, want false")
	}
}
