package repository

import (
	"context"
	"fmt"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres"
)

// RunRepository persists the outcomes of quiz runs.
type RunRepository struct {
	db postgres.DBTX
}

// NewRunRepository creates a new RunRepository with the provided database pool.
func NewRunRepository(db postgres.DBTX) *RunRepository {
	return &RunRepository{db: db}
}

// SaveRun stores a finished or abandoned run and returns its ID.
func (r *RunRepository) SaveRun(ctx context.Context, run *entities.RunResult) (int64, error) {
	query := `
		INSERT INTO quiz_runs (
			user_id, levels_total, levels_cleared, attempts, correct,
			best_streak, accuracy, status, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		run.UserID,
		run.LevelsTotal,
		run.LevelsCleared,
		run.Attempts,
		run.Correct,
		run.BestStreak,
		run.Accuracy,
		run.Status,
		run.StartedAt,
		run.FinishedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save run: %w", err)
	}

	return id, nil
}

// Summary aggregates every run of a user. A user without runs gets a
// zero summary, not an error.
func (r *RunRepository) Summary(ctx context.Context, userID int64) (*entities.RunSummary, error) {
	query := `
		SELECT
			COUNT(*) AS runs,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed_runs,
			COALESCE(SUM(levels_cleared), 0) AS levels_cleared,
			COALESCE(SUM(attempts), 0) AS attempts,
			COALESCE(SUM(correct), 0) AS correct,
			COALESCE(MAX(best_streak), 0) AS best_streak,
			COALESCE(ROUND(AVG(accuracy)), 0)::int AS avg_accuracy
		FROM quiz_runs
		WHERE user_id = $1
	`

	var summary entities.RunSummary
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&summary.Runs,
		&summary.CompletedRuns,
		&summary.LevelsCleared,
		&summary.Attempts,
		&summary.Correct,
		&summary.BestStreak,
		&summary.AvgAccuracy,
	)
	if err != nil {
		return nil, fmt.Errorf("run summary: %w", err)
	}

	return &summary, nil
}

// TopStreaks returns the users with the highest best streak.
func (r *RunRepository) TopStreaks(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error) {
	query := `
		SELECT qr.user_id, u.first_name, MAX(qr.best_streak) AS best_streak, COUNT(*) AS runs
		FROM quiz_runs qr
		JOIN users u ON u.id = qr.user_id
		GROUP BY qr.user_id, u.first_name
		HAVING MAX(qr.best_streak) > 0
		ORDER BY best_streak DESC, runs ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top streaks: %w", err)
	}
	defer rows.Close()

	var entries []entities.LeaderboardEntry
	for rows.Next() {
		var e entities.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.FirstName, &e.BestStreak, &e.Runs); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
