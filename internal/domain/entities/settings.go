package entities

import (
	"time"
)

// Levels-per-run bounds. A run never exceeds MaxLevelsPerRun countries
// regardless of dataset size.
const (
	MinLevelsPerRun = 1
	MaxLevelsPerRun = 100

	DefaultLevelsPerRun = 10
	DefaultReminderHour = 18
)

// UserSettings stores user-specific quiz and reminder preferences.
type UserSettings struct {
	UserID           int64
	LevelsPerRun     int    // countries per quiz run, 1..100
	HintsEnabled     bool   // whether /hint is allowed mid-run
	RemindersEnabled bool   // whether the daily nudge is sent
	ReminderHour     int    // local hour 0..23 at which the nudge is due
	Timezone         string // IANA name or fixed offset, e.g. "Europe/Berlin", "UTC+3"
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:       userID,
		LevelsPerRun: DefaultLevelsPerRun,
		HintsEnabled: true,
		ReminderHour: DefaultReminderHour,
		Timezone:     "UTC",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ReminderDue reports whether the daily nudge is due at the given
// instant: reminders are enabled and the user's local hour matches
// the configured hour. A broken timezone falls back to UTC.
func (us *UserSettings) ReminderDue(now time.Time) bool {
	if !us.RemindersEnabled {
		return false
	}

	loc, err := LocationFor(us.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return now.In(loc).Hour() == us.ReminderHour
}
