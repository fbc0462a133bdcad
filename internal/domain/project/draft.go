package project

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

// MaxCourseNumber is the highest study year a course bound may name.
const MaxCourseNumber = 10

// UniversityResolver maps free-form university references to canonical ids.
type UniversityResolver interface {
	ResolveID(value string) (string, bool)
}

// Draft is what a leader submits when creating or editing a project.
type Draft struct {
	Title               string
	Description         string
	Tags                []string
	Roles               []Role
	Visibility          Visibility
	AllowedUniversities []string
	MinCourse           *int
	MaxCourse           *int
	LeaderRoleID        string
}

// Normalize validates d and returns the cleaned copy used to build or edit a
// project. University references that cannot be resolved are dropped; if none
// remain the draft is rejected. Roles without an id get one from newID and
// submitted fill counts are clamped.
func (d Draft) Normalize(resolver UniversityResolver, newID func() string) (Draft, error) {
	fields := make(map[string]string)
	out := Draft{
		Title:        strings.TrimSpace(d.Title),
		Description:  strings.TrimSpace(d.Description),
		Tags:         normalizeTags(d.Tags),
		Visibility:   d.Visibility,
		MinCourse:    cloneInt(d.MinCourse),
		MaxCourse:    cloneInt(d.MaxCourse),
		LeaderRoleID: d.LeaderRoleID,
	}

	if out.Title == "" {
		fields["title"] = domain.MsgRequired
	}
	if out.Visibility == "" {
		out.Visibility = VisibilityOpen
	}
	if !out.Visibility.IsValid() {
		fields["visibility"] = fmt.Sprintf("invalid: %q", d.Visibility)
	}

	out.AllowedUniversities = resolveUniversities(resolver, d.AllowedUniversities)
	if len(out.AllowedUniversities) == 0 {
		fields["allowed_universities"] = "select at least one university from the directory"
	}

	for name, bound := range map[string]*int{"min_course": out.MinCourse, "max_course": out.MaxCourse} {
		if bound != nil && (*bound < 1 || *bound > MaxCourseNumber) {
			fields[name] = fmt.Sprintf("must be 1-%d, got %d", MaxCourseNumber, *bound)
		}
	}
	if out.MinCourse != nil && out.MaxCourse != nil && *out.MinCourse > *out.MaxCourse {
		fields["min_course"] = fmt.Sprintf("must not exceed max_course (%d > %d)", *out.MinCourse, *out.MaxCourse)
	}

	out.Roles = make([]Role, 0, len(d.Roles))
	seen := make(map[string]bool, len(d.Roles))
	for i, r := range d.Roles {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			fields[fmt.Sprintf("roles[%d].name", i)] = domain.MsgRequired
		}
		if r.ID == "" {
			r.ID = newID()
		}
		if seen[r.ID] {
			fields[fmt.Sprintf("roles[%d].id", i)] = fmt.Sprintf("duplicate role id %q", r.ID)
		}
		seen[r.ID] = true
		r.RequiredCount = max(1, r.RequiredCount)
		r.FilledCount = min(max(0, r.FilledCount), r.RequiredCount)
		out.Roles = append(out.Roles, r)
	}

	if !seen[out.LeaderRoleID] {
		out.LeaderRoleID = ""
	}

	if err := domain.FieldsOrNil(fields); err != nil {
		return Draft{}, err
	}
	return out, nil
}

func resolveUniversities(resolver UniversityResolver, refs []string) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if resolver == nil {
			break
		}
		id, ok := resolver.ResolveID(ref)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
