package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// ErrBotBlocked is returned by a notifier when the user has blocked the bot.
var ErrBotBlocked = errors.New("bot blocked by user")

// CountryRepository provides read access to the country dataset.
type CountryRepository interface {
	All() []entities.Country
	GetByID(id string) (entities.Country, error)
	ByContinent(name string) []entities.Country
	Count() int
}

// UserRepository persists Telegram users.
type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Deactivate(ctx context.Context, userID int64) error
}

// SettingsRepository persists per-user quiz preferences.
type SettingsRepository interface {
	Create(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateLevelsPerRun(ctx context.Context, userID int64, levels int) error
	UpdateHintsEnabled(ctx context.Context, userID int64, enabled bool) error
	UpdateRemindersEnabled(ctx context.Context, userID int64, enabled bool) error
	UpdateReminderHour(ctx context.Context, userID int64, hour int) error
	UpdateTimezone(ctx context.Context, userID int64, timezone string) error
}

// RunRepository persists finished quiz runs and aggregates them.
type RunRepository interface {
	SaveRun(ctx context.Context, run *entities.RunResult) (int64, error)
	Summary(ctx context.Context, userID int64) (*entities.RunSummary, error)
	TopStreaks(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error)
}

// ReminderRepository lists users who opted into the daily nudge.
type ReminderRepository interface {
	ListEnabled(ctx context.Context, afterUserID int64, limit int) ([]entities.ReminderTarget, error)
}

// Transactor runs a function within a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// ReminderNotifier delivers reminder messages to users.
// Implemented by the telegram handler, which is created after the services.
type ReminderNotifier interface {
	SendReminder(target entities.ReminderTarget) error
}
