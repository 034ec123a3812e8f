package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// ReminderService sends the daily play nudge to opted-in users.
type ReminderService struct {
	reminders ReminderRepository
	users     UserRepository
	notifier  ReminderNotifier
	logger    *zap.Logger
	cronSpec  string
	batchSize int
}

// NewReminderService creates a new reminder service. The cron spec decides
// how often due users are checked, the batch size how many are loaded per page.
func NewReminderService(
	reminders ReminderRepository,
	users UserRepository,
	logger *zap.Logger,
	cronSpec string,
	batchSize int,
) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		users:     users,
		logger:    logger,
		cronSpec:  cronSpec,
		batchSize: batchSize,
	}
}

// SetNotifier wires the delivery layer in (the handler is created after the services).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start runs the reminder loop until the context is cancelled.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started", zap.String("cron_spec", s.cronSpec))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.cronSpec, func() {
		if err := s.sendDueReminders(ctx, time.Now()); err != nil {
			s.logger.Error("failed to send reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

// sendDueReminders pages through opted-in users and nudges those whose
// local hour matches their configured reminder hour.
func (s *ReminderService) sendDueReminders(ctx context.Context, now time.Time) error {
	var afterUserID int64
	totalSent := 0

	for {
		targets, err := s.reminders.ListEnabled(ctx, afterUserID, s.batchSize)
		if err != nil {
			return fmt.Errorf("list reminder targets: %w", err)
		}
		if len(targets) == 0 {
			break
		}

		totalSent += s.processBatch(ctx, targets, now)

		afterUserID = targets[len(targets)-1].UserID
		if len(targets) < s.batchSize {
			break
		}
	}

	s.logger.Info("reminders processed", zap.Int("total_sent", totalSent))

	return nil
}

// processBatch sends one batch concurrently, capped at maxConcurrent sends.
func (s *ReminderService) processBatch(ctx context.Context, targets []entities.ReminderTarget, now time.Time) int {
	const maxConcurrent = 10

	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, target := range targets {
		if !target.Due(now) {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.sendOne(ctx, target); err != nil {
				s.logger.Error("failed to send reminder",
					zap.Int64("user_id", target.UserID),
					zap.Error(err))
				return
			}

			mu.Lock()
			sent++
			mu.Unlock()
		}()
	}

	wg.Wait()

	return sent
}

// sendOne delivers a single nudge. Users who blocked the bot are
// deactivated instead of being retried every day.
func (s *ReminderService) sendOne(ctx context.Context, target entities.ReminderTarget) error {
	if s.notifier == nil {
		return errors.New("notifier not initialized")
	}

	err := s.notifier.SendReminder(target)
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrBotBlocked) {
		if derr := s.users.Deactivate(ctx, target.UserID); derr != nil {
			return fmt.Errorf("deactivate blocked user: %w", derr)
		}
		s.logger.Info("user deactivated after blocking the bot", zap.Int64("user_id", target.UserID))
		return nil
	}

	return fmt.Errorf("send reminder: %w", err)
}
