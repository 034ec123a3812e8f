package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres/repository"
)

// ResetService wipes a user's quiz history in a single transaction.
type ResetService struct {
	tr Transactor
}

// NewResetService creates a new reset service.
func NewResetService(tr Transactor) *ResetService {
	return &ResetService{tr: tr}
}

// ResetUser deletes the user's runs and settings, then restores default
// settings, so either everything is wiped or nothing is.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := repository.NewResetRepository(tx).ResetUser(ctx, userID); err != nil {
			return fmt.Errorf("reset user data: %w", err)
		}

		if err := repository.NewSettingsRepository(tx).Create(ctx, userID); err != nil {
			return fmt.Errorf("restore default settings: %w", err)
		}

		return nil
	})
}
