package storage_test

import (
	"math/rand"
	"testing"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
	"github.com/eldarkhamitov/country-quiz-bot/internal/storage"
)

func newSession() *quiz.Session {
	countries := []entities.Country{
		{ID: "250", Name: "France", Capital: "Paris", Continent: "Europe", DriveSide: entities.DriveSideRight},
	}
	return quiz.NewSession(countries, rand.New(rand.NewSource(1)), 1)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := storage.NewSessionStore()

	if _, ok := store.Get(1); ok {
		t.Fatal("Get() on empty store reported a session")
	}

	want := newSession()
	store.Store(1, want)

	got, ok := store.Get(1)
	if !ok {
		t.Fatal("Get() after Store() found nothing")
	}
	if got != want {
		t.Error("Get() returned a different session")
	}

	store.Delete(1)
	if _, ok := store.Get(1); ok {
		t.Error("Get() after Delete() still found a session")
	}
}

func TestSessionStoreCancelsPendingOnReplace(t *testing.T) {
	store := storage.NewSessionStore()
	store.Store(1, newSession())

	cancelled := 0
	store.SetPendingAdvance(1, func() { cancelled++ })

	store.Store(1, newSession())
	if cancelled != 1 {
		t.Errorf("pending advance cancelled %d times after replace, want 1", cancelled)
	}
}

func TestSessionStoreCancelsPendingOnDelete(t *testing.T) {
	store := storage.NewSessionStore()
	store.Store(1, newSession())

	cancelled := 0
	store.SetPendingAdvance(1, func() { cancelled++ })

	store.Delete(1)
	if cancelled != 1 {
		t.Errorf("pending advance cancelled %d times after delete, want 1", cancelled)
	}
}

func TestSessionStoreSetPendingCancelsPrevious(t *testing.T) {
	store := storage.NewSessionStore()
	store.Store(1, newSession())

	first := 0
	store.SetPendingAdvance(1, func() { first++ })
	store.SetPendingAdvance(1, func() {})

	if first != 1 {
		t.Errorf("previous pending advance cancelled %d times, want 1", first)
	}
}

func TestSessionStoreClearDoesNotCancel(t *testing.T) {
	store := storage.NewSessionStore()
	store.Store(1, newSession())

	cancelled := 0
	store.SetPendingAdvance(1, func() { cancelled++ })

	store.ClearPendingAdvance(1)
	store.Delete(1)

	if cancelled != 0 {
		t.Errorf("cleared pending advance was cancelled %d times, want 0", cancelled)
	}
}

func TestReminderStoreUpsertAndGetPrev(t *testing.T) {
	store := storage.NewReminderStore()

	if _, hadPrev := store.UpsertAndGetPrev(1, 100, 7); hadPrev {
		t.Error("first upsert reported a previous nudge")
	}

	prev, hadPrev := store.UpsertAndGetPrev(1, 100, 8)
	if !hadPrev {
		t.Fatal("second upsert found no previous nudge")
	}
	if prev.MessageID != 7 || prev.ChatID != 100 {
		t.Errorf("previous nudge = %+v, want message 7 in chat 100", prev)
	}

	if _, ok := store.Delete(1); !ok {
		t.Error("Delete() found nothing after upserts")
	}
	if _, ok := store.Delete(1); ok {
		t.Error("second Delete() still found a nudge")
	}
}
