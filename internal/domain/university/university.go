// Package university describes the universities the campus app knows about
// and the content their public services expose.
package university

import (
	"fmt"
	"strings"
)

// PaymentOption is a dean-office payment link shown to students.
type PaymentOption struct {
	ID      string
	Title   string
	Caption string
	URL     string
}

// University is one entry of the static directory.
type University struct {
	ID             string
	Title          string
	ShortTitle     string
	Domain         string
	Aliases        []string
	PaymentOptions []PaymentOption
}

// Directory resolves free-form university references (ids, titles, short
// titles, aliases) to canonical entries. It is immutable after construction
// and safe for concurrent use.
type Directory struct {
	list      []University
	byKey     map[string]int
	defaultID string
}

// NewDirectory indexes unis. defaultID must name one of them.
func NewDirectory(unis []University, defaultID string) (*Directory, error) {
	d := &Directory{
		list:      make([]University, 0, len(unis)),
		byKey:     make(map[string]int),
		defaultID: defaultID,
	}

	for _, u := range unis {
		if strings.TrimSpace(u.ID) == "" {
			return nil, fmt.Errorf("university %q: id is required", u.Title)
		}
		if _, dup := d.byKey[normalizeKey(u.ID)]; dup {
			return nil, fmt.Errorf("university %q: duplicate id", u.ID)
		}

		idx := len(d.list)
		d.list = append(d.list, u)

		keys := append([]string{u.ID, u.Title, u.ShortTitle}, u.Aliases...)
		for _, k := range keys {
			nk := normalizeKey(k)
			if nk == "" {
				continue
			}
			if _, taken := d.byKey[nk]; !taken {
				d.byKey[nk] = idx
			}
		}
	}

	if _, ok := d.Get(defaultID); !ok {
		return nil, fmt.Errorf("default university %q is not in the directory", defaultID)
	}
	return d, nil
}

// All returns the directory entries in configuration order.
func (d *Directory) All() []University {
	out := make([]University, len(d.list))
	copy(out, d.list)
	return out
}

// Get looks a university up by canonical id.
func (d *Directory) Get(id string) (University, bool) {
	for _, u := range d.list {
		if u.ID == id {
			return u, true
		}
	}
	return University{}, false
}

// Default returns the fallback university used when a reference is missing
// or unknown.
func (d *Directory) Default() University {
	u, _ := d.Get(d.defaultID)
	return u
}

// Resolve matches value against ids, titles, short titles and aliases,
// ignoring case and surrounding whitespace.
func (d *Directory) Resolve(value string) (University, bool) {
	idx, ok := d.byKey[normalizeKey(value)]
	if !ok {
		return University{}, false
	}
	return d.list[idx], true
}

// ResolveOrDefault is Resolve with the default university as fallback.
func (d *Directory) ResolveOrDefault(value string) University {
	if u, ok := d.Resolve(value); ok {
		return u
	}
	return d.Default()
}

// CanonicalID returns the canonical id for value, or the trimmed raw value
// when it cannot be resolved.
func (d *Directory) CanonicalID(value string) string {
	if u, ok := d.Resolve(value); ok {
		return u.ID
	}
	return strings.TrimSpace(value)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// ResolveID returns the canonical id for value and whether it resolved.
func (d *Directory) ResolveID(value string) (string, bool) {
	u, ok := d.Resolve(value)
	return u.ID, ok
}
