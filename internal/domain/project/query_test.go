package project

import (
	"reflect"
	"testing"
)

func ids(ps []*Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func listingFixture() []*Project {
	return []*Project{
		{ID: "a", Title: "Mobile Maps", Tags: []string{"mobile", "maps"}, Leader: UserSnapshot{ID: "me"}},
		{ID: "b", Title: "Chat bot", Tags: []string{"ai"}, AllowedUniversities: []string{"u2"}},
		{ID: "c", Title: "Mobile payments", Tags: []string{"mobile", "fintech"}, MinCourse: intPtr(3)},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	me := &UserSnapshot{ID: "me", UniversityID: "u1", Course: 3}

	tests := []struct {
		name string
		user *UserSnapshot
		q    Query
		want []string
	}{
		{name: "available hides ineligible", user: me, q: Query{View: ViewAvailable}, want: []string{"a", "c"}},
		{name: "empty view defaults to available", user: me, q: Query{}, want: []string{"a", "c"}},
		{name: "mine lists led projects", user: me, q: Query{View: ViewMine}, want: []string{"a"}},
		{name: "mine without user is empty", user: nil, q: Query{View: ViewMine}, want: []string{}},
		{name: "search is case-insensitive", user: nil, q: Query{Search: "  MOBILE "}, want: []string{"a", "c"}},
		{name: "all tags required", user: nil, q: Query{Tags: []string{"mobile", "maps"}}, want: []string{"a"}},
		{name: "browse mode", user: nil, q: Query{}, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ids(Filter(listingFixture(), tt.user, tt.q, newResolver()))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagOptions(t *testing.T) {
	t.Parallel()

	got := TagOptions(listingFixture())
	want := []string{"mobile", "maps", "ai", "fintech"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagOptions() = %v, want %v", got, want)
	}
}

func TestParseView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{in: "", want: ViewAvailable},
		{in: "mine", want: ViewMine},
		{in: "Available", want: ViewAvailable},
		{in: "all", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseView(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseView(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseView(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestViewerState(t *testing.T) {
	t.Parallel()

	p := sampleProject()

	leader := p.ViewerState("lead")
	if !leader.IsLeader || !leader.IsParticipant || leader.RoleID != "r-lead" {
		t.Errorf("leader view = %+v", leader)
	}
	if len(leader.OpenRoles) != 1 || leader.OpenRoles[0].ID != "r1" {
		t.Errorf("OpenRoles = %+v, want [r1]", leader.OpenRoles)
	}

	applicant := p.ViewerState("b")
	if applicant.IsLeader || applicant.IsParticipant {
		t.Errorf("applicant view = %+v", applicant)
	}
	if applicant.Request == nil || applicant.Request.ID != "req1" {
		t.Errorf("applicant Request = %+v, want req1", applicant.Request)
	}

	if anon := p.ViewerState(""); anon.Request != nil || anon.IsLeader {
		t.Errorf("anonymous view = %+v", anon)
	}
}

func TestDirectoryAndProfile(t *testing.T) {
	t.Parallel()

	current := &UserSnapshot{ID: "b", FullName: "Boris Updated"}
	dir := Directory([]*Project{sampleProject()}, current)

	if got := Profile(dir, "lead").FullName; got != "Lena Leader" {
		t.Errorf("Profile(lead).FullName = %q", got)
	}
	if got := Profile(dir, "b").FullName; got != "Boris Updated" {
		t.Errorf("Profile(b).FullName = %q, want current user snapshot", got)
	}
	ghost := Profile(dir, "ghost")
	if ghost.FullName != UnknownMemberName || ghost.University != UnknownMemberUniversity || ghost.ID != "ghost" {
		t.Errorf("Profile(ghost) = %+v, want placeholder", ghost)
	}
}
