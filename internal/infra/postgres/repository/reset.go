package repository

import (
	"context"
	"fmt"

	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres"
)

type ResetRepository struct {
	db postgres.DBTX
}

func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

// ResetUser wipes a user's runs and settings. The user row itself is
// kept so the bot still knows the chat.
func (s *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM quiz_runs WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete quiz_runs: %w", err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM user_settings WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete user_settings: %w", err)
	}

	return nil
}
