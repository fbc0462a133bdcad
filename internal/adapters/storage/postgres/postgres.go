// Package postgres is the remote document store shared by every instance of
// the service.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// Config holds connection settings.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogQueries      bool
}

type documentModel struct {
	Collection string    `gorm:"primaryKey;size:64"`
	ID         string    `gorm:"primaryKey;size:128"`
	Body       string    `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time `gorm:"not null;index;autoUpdateTime:false"`
}

func (documentModel) TableName() string { return "campus_documents" }

func (m documentModel) document() ports.Document {
	return ports.Document{Collection: m.Collection, ID: m.ID, Body: []byte(m.Body), UpdatedAt: m.UpdatedAt.UTC()}
}

var (
	_ ports.DocumentBackend = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// Store implements ports.DocumentBackend on PostgreSQL through gorm.
type Store struct {
	db *gorm.DB
}

// slogWriter routes gorm's query log into the service logger.
type slogWriter struct{ log *slog.Logger }

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Debug(fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}

// Open connects, sizes the pool and migrates the documents table.
func Open(cfg Config, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	level := logger.Silent
	if cfg.LogQueries {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.New(slogWriter{log}, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", errors.Join(domain.ErrUnavailable, err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database handle: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.AutoMigrate(&documentModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrating documents table: %w", err)
	}
	return &Store{db: db}, nil
}

// Name implements ports.DocumentBackend and ports.HealthChecker.
func (s *Store) Name() string { return "postgres" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("postgres handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns one document.
func (s *Store) Get(ctx context.Context, collection, id string) (*ports.Document, error) {
	var m documentModel
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s: %w", collection, id, err)
	}
	doc := m.document()
	return &doc, nil
}

// List returns a collection, newest first.
func (s *Store) List(ctx context.Context, collection string) ([]ports.Document, error) {
	var models []documentModel
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("updated_at DESC").Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}

	docs := make([]ports.Document, 0, len(models))
	for _, m := range models {
		docs = append(docs, m.document())
	}
	return docs, nil
}

// Put upserts doc.
func (s *Store) Put(ctx context.Context, doc ports.Document) error {
	m := documentModel{Collection: doc.Collection, ID: doc.ID, Body: string(doc.Body), UpdatedAt: doc.UpdatedAt.UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", doc.Collection, doc.ID, err)
	}
	return nil
}

// Delete removes a document if present.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&documentModel{}).Error
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	return nil
}
