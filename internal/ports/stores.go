package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
)

// ProjectStore persists collaboration projects.
type ProjectStore interface {
	// List returns every project, most recently updated first.
	List(ctx context.Context) ([]project.Project, error)

	// Get returns domain.ErrNotFound if the project does not exist.
	Get(ctx context.Context, id string) (*project.Project, error)

	// Create stores a new project. The store assigns the id when empty and
	// owns both timestamps.
	Create(ctx context.Context, p *project.Project) (*project.Project, error)

	// Update replaces the whole record with p (upsert by id). The store keeps
	// CreatedAt and refreshes UpdatedAt.
	Update(ctx context.Context, p *project.Project) (*project.Project, error)

	// Delete removes the project. Deleting a missing project is not an error.
	Delete(ctx context.Context, id string) error
}

// AccountStore persists student accounts keyed by external user id.
type AccountStore interface {
	// Get returns domain.ErrNotFound if no account is registered for id.
	Get(ctx context.Context, userID string) (*account.Account, error)

	// Save upserts a by UserID, keeping the original CreatedAt.
	Save(ctx context.Context, a *account.Account) (*account.Account, error)
}

// Document is an opaque JSON record in a named collection.
type Document struct {
	Collection string
	ID         string
	Body       []byte
	UpdatedAt  time.Time
}

// DocumentBackend is the storage engine behind the project and account
// stores. Local (SQLite) and remote (PostgreSQL) engines implement it, and
// the replicated store combines both behind the same interface.
type DocumentBackend interface {
	// Name identifies the backend in logs and health output.
	Name() string

	// Get returns domain.ErrNotFound when the document does not exist.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// List returns every document of collection, newest UpdatedAt first.
	List(ctx context.Context, collection string) ([]Document, error)

	// Put inserts or replaces doc.
	Put(ctx context.Context, doc Document) error

	// Delete removes a document; missing documents are ignored.
	Delete(ctx context.Context, collection, id string) error
}
