package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	appctx "github.com/jsamuelsen11/campus-superapp/internal/app/context"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/account"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

var _ ports.AccountService = (*AccountService)(nil)

// AccountService registers students and reads their profiles.
type AccountService struct {
	store  ports.AccountStore
	dir    *university.Directory
	now    func() time.Time
	logger *slog.Logger
}

// NewAccountService creates an AccountService. A nil logger discards output.
func NewAccountService(store ports.AccountStore, dir *university.Directory, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountService{
		store:  store,
		dir:    dir,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Register validates the form and upserts the account. Unknown or empty
// universities fall back to the default one; a missing email is derived from
// the user id. Re-registering keeps the original creation time.
func (s *AccountService) Register(ctx context.Context, reg account.Registration) (*account.Account, error) {
	course, err := reg.Validate()
	if err != nil {
		return nil, err
	}

	userID := strings.TrimSpace(reg.UserID)
	s.logger.InfoContext(ctx, "registering account", slog.String("user_id", userID))

	existing, err := s.store.Get(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.ErrorContext(ctx, "failed to load account",
			slog.String("operation", "Register"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading account: %w", err)
	}

	uni := s.dir.ResolveOrDefault(reg.University)
	email := strings.TrimSpace(reg.Email)
	if email == "" {
		email = account.DefaultEmail(userID)
	}

	now := s.now()
	acc := &account.Account{
		UserID:          userID,
		FullName:        strings.TrimSpace(reg.FullName),
		Email:           email,
		UniversityID:    uni.ID,
		UniversityTitle: uni.Title,
		Course:          course,
		GroupLabel:      strings.TrimSpace(reg.GroupLabel),
		ScheduleProfile: account.SanitizeScheduleProfile(reg.ScheduleProfile),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if existing != nil && !existing.CreatedAt.IsZero() {
		acc.CreatedAt = existing.CreatedAt
	}

	saved, err := s.store.Save(ctx, acc)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save account",
			slog.String("operation", "Register"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving account: %w", err)
	}

	if rc := appctx.FromContext(ctx); rc != nil {
		rc.Forget(accountKey(userID))
	}
	return saved, nil
}

// GetAccount returns the account registered for userID.
func (s *AccountService) GetAccount(ctx context.Context, userID string) (*account.Account, error) {
	acc, err := s.store.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to fetch account",
				slog.String("operation", "GetAccount"),
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	return acc, nil
}
