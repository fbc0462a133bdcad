package project

import "strings"

// CanView reports whether user may see p. A nil user browses everything.
// University references on both sides are normalized through resolver; entries
// it does not know are compared verbatim. CanView never panics and has no side
// effects.
func CanView(p *Project, user *UserSnapshot, resolver UniversityResolver) bool {
	if p == nil {
		return false
	}
	if user == nil {
		return true
	}

	if len(p.AllowedUniversities) > 0 {
		userUni := canonical(resolver, user.UniversityID)
		if userUni == "" {
			return false
		}
		allowed := false
		for _, ref := range p.AllowedUniversities {
			if canonical(resolver, ref) == userUni {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	if p.MinCourse != nil && user.Course < *p.MinCourse {
		return false
	}
	if p.MaxCourse != nil && user.Course > *p.MaxCourse {
		return false
	}
	return true
}

func canonical(resolver UniversityResolver, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || resolver == nil {
		return ref
	}
	if id, ok := resolver.ResolveID(ref); ok {
		return id
	}
	return ref
}
