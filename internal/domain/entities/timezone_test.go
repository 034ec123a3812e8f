package entities_test

import (
	"testing"
	"time"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

func TestLocationForFixedOffsets(t *testing.T) {
	tests := []struct {
		in         string
		wantOffset int // seconds east of UTC
	}{
		{"UTC", 0},
		{"utc", 0},
		{"GMT", 0},
		{"UTC+0", 0},
		{"UTC+3", 3 * 3600},
		{"utc-5", -5 * 3600},
		{"GMT+2", 2 * 3600},
		{"+05:30", 5*3600 + 30*60},
		{"-07:00", -7 * 3600},
		{"-3", -3 * 3600},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc, err := entities.LocationFor(tt.in)
			if err != nil {
				t.Fatalf("LocationFor(%q) error = %v", tt.in, err)
			}
			_, offset := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).In(loc).Zone()
			if offset != tt.wantOffset {
				t.Errorf("LocationFor(%q) offset = %d, want %d", tt.in, offset, tt.wantOffset)
			}
		})
	}
}

func TestLocationForRejectsGarbage(t *testing.T) {
	for _, in := range []string{"Mars/Olympus", "UTC+15", "UTC+abc", "++3", "5"} {
		if _, err := entities.LocationFor(in); err == nil {
			t.Errorf("LocationFor(%q) accepted, want error", in)
		}
	}
}

func TestReminderDue(t *testing.T) {
	// 09:00 UTC is 12:00 in UTC+3.
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	s := entities.NewUserSettings(1)
	s.RemindersEnabled = true
	s.ReminderHour = 12
	s.Timezone = "UTC+3"
	if !s.ReminderDue(now) {
		t.Error("ReminderDue() = false at the configured local hour, want true")
	}

	s.ReminderHour = 9
	if s.ReminderDue(now) {
		t.Error("ReminderDue() = true at the wrong local hour, want false")
	}

	s.ReminderHour = 12
	s.RemindersEnabled = false
	if s.ReminderDue(now) {
		t.Error("ReminderDue() = true with reminders disabled, want false")
	}
}

func TestReminderTargetDueFallsBackToUTC(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	target := entities.ReminderTarget{UserID: 1, ReminderHour: 18, Timezone: "Mars/Olympus"}
	if !target.Due(now) {
		t.Error("Due() = false with a broken timezone at the UTC hour, want true")
	}
}
