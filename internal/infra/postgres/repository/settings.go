package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a user. Existing rows are left alone.
func (r *SettingsRepository) Create(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO user_settings (
			user_id, levels_per_run, hints_enabled, reminders_enabled,
			reminder_hour, timezone, created_at, updated_at
		) VALUES ($1, $2, TRUE, FALSE, $3, 'UTC', NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, entities.DefaultLevelsPerRun, entities.DefaultReminderHour)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, levels_per_run, hints_enabled, reminders_enabled,
		       reminder_hour, timezone, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var settings entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.LevelsPerRun,
		&settings.HintsEnabled,
		&settings.RemindersEnabled,
		&settings.ReminderHour,
		&settings.Timezone,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// UpdateLevelsPerRun updates how many countries a quiz run visits.
func (r *SettingsRepository) UpdateLevelsPerRun(ctx context.Context, userID int64, levels int) error {
	query := `
		UPDATE user_settings
		SET levels_per_run = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, levels, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update levels per run: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateHintsEnabled toggles the /hint command for a user.
func (r *SettingsRepository) UpdateHintsEnabled(ctx context.Context, userID int64, enabled bool) error {
	query := `
		UPDATE user_settings
		SET hints_enabled = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, enabled, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update hints enabled: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateRemindersEnabled toggles the daily nudge for a user.
func (r *SettingsRepository) UpdateRemindersEnabled(ctx context.Context, userID int64, enabled bool) error {
	query := `
		UPDATE user_settings
		SET reminders_enabled = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, enabled, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update reminders enabled: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateReminderHour updates the local hour of the daily nudge.
func (r *SettingsRepository) UpdateReminderHour(ctx context.Context, userID int64, hour int) error {
	query := `
		UPDATE user_settings
		SET reminder_hour = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, hour, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update reminder hour: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// UpdateTimezone updates the user's timezone.
func (r *SettingsRepository) UpdateTimezone(ctx context.Context, userID int64, timezone string) error {
	query := `
		UPDATE user_settings
		SET timezone = $1, updated_at = $2
		WHERE user_id = $3
	`

	result, err := r.db.Exec(ctx, query, timezone, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update timezone: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
