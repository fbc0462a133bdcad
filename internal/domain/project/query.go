package project

import (
	"fmt"
	"strings"
)

// View selects which projects a listing shows.
type View string

const (
	// ViewAvailable lists every project the user is eligible to see.
	ViewAvailable View = "available"
	// ViewMine lists the projects the user leads.
	ViewMine View = "mine"
)

// IsValid returns true if the view is one of the defined constants.
func (v View) IsValid() bool {
	switch v {
	case ViewAvailable, ViewMine:
		return true
	default:
		return false
	}
}

// Query narrows a project listing.
type Query struct {
	View   View
	Search string
	Tags   []string
}

// Filter returns the projects matching q for user, preserving input order.
// Search is a case-insensitive title match and every requested tag must be
// present.
func Filter(projects []*Project, user *UserSnapshot, q Query, resolver UniversityResolver) []*Project {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]*Project, 0, len(projects))

	for _, p := range projects {
		switch q.View {
		case ViewMine:
			if user == nil || !p.IsLeader(user.ID) {
				continue
			}
		default:
			if !CanView(p, user, resolver) {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if !hasAllTags(p.Tags, q.Tags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TagOptions returns every distinct tag in first-seen order.
func TagOptions(projects []*Project) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

func hasAllTags(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]bool, len(have))
	for _, t := range have {
		set[t] = true
	}
	for _, t := range want {
		if !set[t] {
			return false
		}
	}
	return true
}

// ParseView maps a query parameter to a View. Empty selects ViewAvailable.
func ParseView(s string) (View, error) {
	if s == "" {
		return ViewAvailable, nil
	}
	v := View(strings.ToLower(s))
	if !v.IsValid() {
		return "", fmt.Errorf("unknown view %q", s)
	}
	return v, nil
}
