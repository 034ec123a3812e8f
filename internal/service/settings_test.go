package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres/repository"
)

type fakeSettingsRepo struct {
	rows    map[int64]*entities.UserSettings
	creates int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: make(map[int64]*entities.UserSettings)}
}

func (f *fakeSettingsRepo) Create(_ context.Context, userID int64) error {
	f.creates++
	if _, ok := f.rows[userID]; ok {
		return nil
	}
	f.rows[userID] = entities.NewUserSettings(userID)
	return nil
}

func (f *fakeSettingsRepo) GetByUserID(_ context.Context, userID int64) (*entities.UserSettings, error) {
	settings, ok := f.rows[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	out := *settings
	return &out, nil
}

func (f *fakeSettingsRepo) UpdateLevelsPerRun(_ context.Context, userID int64, levels int) error {
	settings, ok := f.rows[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	settings.LevelsPerRun = levels
	return nil
}

func (f *fakeSettingsRepo) UpdateHintsEnabled(_ context.Context, userID int64, enabled bool) error {
	settings, ok := f.rows[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	settings.HintsEnabled = enabled
	return nil
}

func (f *fakeSettingsRepo) UpdateRemindersEnabled(_ context.Context, userID int64, enabled bool) error {
	settings, ok := f.rows[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	settings.RemindersEnabled = enabled
	return nil
}

func (f *fakeSettingsRepo) UpdateReminderHour(_ context.Context, userID int64, hour int) error {
	settings, ok := f.rows[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	settings.ReminderHour = hour
	return nil
}

func (f *fakeSettingsRepo) UpdateTimezone(_ context.Context, userID int64, timezone string) error {
	settings, ok := f.rows[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	settings.Timezone = timezone
	return nil
}

func TestSettingsGetOrCreate(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	settings, err := svc.GetOrCreate(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	if settings.LevelsPerRun != entities.DefaultLevelsPerRun {
		t.Errorf("LevelsPerRun = %d, want %d", settings.LevelsPerRun, entities.DefaultLevelsPerRun)
	}
	if !settings.HintsEnabled {
		t.Error("expected hints enabled by default")
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}

	// A second call must reuse the existing row.
	if _, err := svc.GetOrCreate(context.Background(), 1); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if repo.creates != 1 {
		t.Errorf("creates after second call = %d, want 1", repo.creates)
	}
}

func TestSetLevelsPerRunValidation(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	for _, levels := range []int{0, -5, 101, 1000} {
		if err := svc.SetLevelsPerRun(context.Background(), 1, levels); !errors.Is(err, ErrInvalidLevelsPerRun) {
			t.Errorf("SetLevelsPerRun(%d) error = %v, want ErrInvalidLevelsPerRun", levels, err)
		}
	}
}

func TestSetLevelsPerRunCreatesMissingRow(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	if err := svc.SetLevelsPerRun(context.Background(), 7, 25); err != nil {
		t.Fatalf("SetLevelsPerRun: %v", err)
	}

	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
	if got := repo.rows[7].LevelsPerRun; got != 25 {
		t.Errorf("LevelsPerRun = %d, want 25", got)
	}
}

func TestSetReminderHourValidation(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	for _, hour := range []int{-1, 24} {
		if err := svc.SetReminderHour(context.Background(), 1, hour); !errors.Is(err, ErrInvalidReminderHour) {
			t.Errorf("SetReminderHour(%d) error = %v, want ErrInvalidReminderHour", hour, err)
		}
	}

	if err := svc.SetReminderHour(context.Background(), 1, 7); err != nil {
		t.Fatalf("SetReminderHour(7): %v", err)
	}
	if got := repo.rows[1].ReminderHour; got != 7 {
		t.Errorf("ReminderHour = %d, want 7", got)
	}
}

func TestSetTimezoneValidation(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	if err := svc.SetTimezone(context.Background(), 1, "Mars/Olympus"); !errors.Is(err, ErrInvalidTimezone) {
		t.Errorf("SetTimezone(Mars/Olympus) error = %v, want ErrInvalidTimezone", err)
	}

	if err := svc.SetTimezone(context.Background(), 1, "UTC+3"); err != nil {
		t.Fatalf("SetTimezone(UTC+3): %v", err)
	}
	if got := repo.rows[1].Timezone; got != "UTC+3" {
		t.Errorf("Timezone = %q, want %q", got, "UTC+3")
	}
}
