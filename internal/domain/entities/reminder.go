package entities

import "time"

// ReminderTarget is a user eligible for the daily nudge, joined with
// the chat and timezone data the sender needs.
type ReminderTarget struct {
	UserID       int64
	ChatID       int64
	FirstName    string
	ReminderHour int
	Timezone     string
}

// Due reports whether the target's local hour matches the configured
// reminder hour at the given instant. A broken timezone counts as UTC.
func (t *ReminderTarget) Due(now time.Time) bool {
	loc, err := LocationFor(t.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return now.In(loc).Hour() == t.ReminderHour
}
