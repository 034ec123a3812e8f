package service

import (
	"context"
	"fmt"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
)

// StatsService records finished runs and aggregates user statistics.
type StatsService struct {
	runs RunRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(runs RunRepository) *StatsService {
	return &StatsService{runs: runs}
}

// RecordRun persists a finished or abandoned run and fills in its ID.
func (s *StatsService) RecordRun(ctx context.Context, run *entities.RunResult) error {
	id, err := s.runs.SaveRun(ctx, run)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	run.ID = id

	return nil
}

// Summary aggregates all of a user's recorded runs.
func (s *StatsService) Summary(ctx context.Context, userID int64) (*entities.RunSummary, error) {
	summary, err := s.runs.Summary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	return summary, nil
}

// TopStreaks returns the leaderboard of best streaks.
func (s *StatsService) TopStreaks(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error) {
	entries, err := s.runs.TopStreaks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get top streaks: %w", err)
	}

	return entries, nil
}
