package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

var (
	_ ports.ProjectStore = (*ProjectStore)(nil)
	_ ports.AccountStore = (*AccountStore)(nil)
)

// ProjectStore implements ports.ProjectStore over a document backend.
type ProjectStore struct {
	backend ports.DocumentBackend
	now     func() time.Time
}

// NewProjectStore creates a ProjectStore.
func NewProjectStore(backend ports.DocumentBackend) *ProjectStore {
	return &ProjectStore{backend: backend, now: time.Now}
}

// List returns every project, most recently updated first.
func (s *ProjectStore) List(ctx context.Context) ([]project.Project, error) {
	docs, err := s.backend.List(ctx, CollectionProjects)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]project.Project, 0, len(docs))
	for _, d := range docs {
		p, err := decodeProject(d)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

// Get returns domain.ErrNotFound if the project does not exist.
func (s *ProjectStore) Get(ctx context.Context, id string) (*project.Project, error) {
	d, err := s.backend.Get(ctx, CollectionProjects, id)
	if err != nil {
		return nil, err
	}
	return decodeProject(*d)
}

// Create stores p under a fresh id when p.ID is empty.
func (s *ProjectStore) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	out := p.Clone()
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	now := s.now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now

	if err := s.put(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the stored record, keeping its CreatedAt.
func (s *ProjectStore) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	out := p.Clone()
	now := s.now().UTC()

	existing, err := s.Get(ctx, out.ID)
	switch {
	case err == nil:
		out.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		if out.CreatedAt.IsZero() {
			out.CreatedAt = now
		}
	default:
		return nil, err
	}
	out.UpdatedAt = now

	if err := s.put(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the project.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	if err := s.backend.Delete(ctx, CollectionProjects, id); err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}

func (s *ProjectStore) put(ctx context.Context, p *project.Project) error {
	body, err := json.Marshal(toProjectDoc(p))
	if err != nil {
		return fmt.Errorf("encoding project %s: %w", p.ID, err)
	}
	err = s.backend.Put(ctx, ports.Document{
		Collection: CollectionProjects,
		ID:         p.ID,
		Body:       body,
		UpdatedAt:  p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("storing project %s: %w", p.ID, err)
	}
	return nil
}

func decodeProject(d ports.Document) (*project.Project, error) {
	var pd projectDoc
	if err := json.Unmarshal(d.Body, &pd); err != nil {
		return nil, fmt.Errorf("decoding project %s: %w", d.ID, err)
	}
	if pd.ID == "" {
		pd.ID = d.ID
	}
	return pd.toDomain(), nil
}

// AccountStore implements ports.AccountStore over a document backend.
type AccountStore struct {
	backend ports.DocumentBackend
	now     func() time.Time
}

// NewAccountStore creates an AccountStore.
func NewAccountStore(backend ports.DocumentBackend) *AccountStore {
	return &AccountStore{backend: backend, now: time.Now}
}

// Get returns domain.ErrNotFound if no account is registered for userID.
func (s *AccountStore) Get(ctx context.Context, userID string) (*account.Account, error) {
	d, err := s.backend.Get(ctx, CollectionAccounts, userID)
	if err != nil {
		return nil, err
	}

	var ad accountDoc
	if err := json.Unmarshal(d.Body, &ad); err != nil {
		return nil, fmt.Errorf("decoding account %s: %w", userID, err)
	}
	if ad.UserID == "" {
		ad.UserID = d.ID
	}
	return ad.toDomain(), nil
}

// Save upserts a, keeping the CreatedAt of an existing record.
func (s *AccountStore) Save(ctx context.Context, a *account.Account) (*account.Account, error) {
	out := *a
	now := s.now().UTC()

	existing, err := s.Get(ctx, a.UserID)
	switch {
	case err == nil:
		out.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		if out.CreatedAt.IsZero() {
			out.CreatedAt = now
		}
	default:
		return nil, err
	}
	out.UpdatedAt = now

	body, err := json.Marshal(toAccountDoc(&out))
	if err != nil {
		return nil, fmt.Errorf("encoding account %s: %w", a.UserID, err)
	}
	err = s.backend.Put(ctx, ports.Document{
		Collection: CollectionAccounts,
		ID:         out.UserID,
		Body:       body,
		UpdatedAt:  out.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("storing account %s: %w", a.UserID, err)
	}
	return &out, nil
}
