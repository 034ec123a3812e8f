package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres/repository"
)

var (
	// ErrInvalidLevelsPerRun is returned for a level count outside 1..100.
	ErrInvalidLevelsPerRun = errors.New("levels per run out of range")
	// ErrInvalidReminderHour is returned for an hour outside 0..23.
	ErrInvalidReminderHour = errors.New("reminder hour out of range")
	// ErrInvalidTimezone is returned for a timezone the runtime cannot resolve.
	ErrInvalidTimezone = errors.New("unknown timezone")
)

// SettingsService handles per-user quiz preferences.
type SettingsService struct {
	repo SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetOrCreate returns the user's settings, creating defaults on first use.
func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	if err := s.repo.Create(ctx, userID); err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}

	settings, err = s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings after create: %w", err)
	}

	return settings, nil
}

// SetLevelsPerRun stores how many levels a quiz run should have.
func (s *SettingsService) SetLevelsPerRun(ctx context.Context, userID int64, levels int) error {
	if levels < entities.MinLevelsPerRun || levels > entities.MaxLevelsPerRun {
		return ErrInvalidLevelsPerRun
	}

	return s.update(ctx, userID, func(ctx context.Context) error {
		return s.repo.UpdateLevelsPerRun(ctx, userID, levels)
	})
}

// SetHintsEnabled toggles hint availability during runs.
func (s *SettingsService) SetHintsEnabled(ctx context.Context, userID int64, enabled bool) error {
	return s.update(ctx, userID, func(ctx context.Context) error {
		return s.repo.UpdateHintsEnabled(ctx, userID, enabled)
	})
}

// SetRemindersEnabled toggles the daily play nudge.
func (s *SettingsService) SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error {
	return s.update(ctx, userID, func(ctx context.Context) error {
		return s.repo.UpdateRemindersEnabled(ctx, userID, enabled)
	})
}

// SetReminderHour stores the local hour at which the nudge is sent.
func (s *SettingsService) SetReminderHour(ctx context.Context, userID int64, hour int) error {
	if hour < 0 || hour > 23 {
		return ErrInvalidReminderHour
	}

	return s.update(ctx, userID, func(ctx context.Context) error {
		return s.repo.UpdateReminderHour(ctx, userID, hour)
	})
}

// SetTimezone stores the timezone used to interpret the reminder hour.
// Accepts IANA names as well as fixed offsets like "UTC+3".
func (s *SettingsService) SetTimezone(ctx context.Context, userID int64, timezone string) error {
	if _, err := entities.LocationFor(timezone); err != nil {
		return ErrInvalidTimezone
	}

	return s.update(ctx, userID, func(ctx context.Context) error {
		return s.repo.UpdateTimezone(ctx, userID, timezone)
	})
}

// update applies a settings change, creating the defaults row first
// when the user has never touched their settings.
func (s *SettingsService) update(ctx context.Context, userID int64, apply func(ctx context.Context) error) error {
	err := apply(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return fmt.Errorf("update settings: %w", err)
	}

	if err := s.repo.Create(ctx, userID); err != nil {
		return fmt.Errorf("create default settings: %w", err)
	}

	if err := apply(ctx); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return nil
}
