package entities

import "time"

// Run statuses.
const (
	RunStatusCompleted = "completed"
	RunStatusAbandoned = "abandoned"
)

// RunResult is the persisted outcome of a single quiz run.
type RunResult struct {
	ID            int64
	UserID        int64
	LevelsTotal   int // pool size the run started with
	LevelsCleared int // levels fully answered before the run ended
	Attempts      int
	Correct       int
	BestStreak    int
	Accuracy      int // rounded percentage, 100 for zero attempts
	Status        string
	StartedAt     time.Time
	FinishedAt    *time.Time // nullable
}

// Finish marks the run with the given status and stamps the finish time.
func (r *RunResult) Finish(status string) {
	r.Status = status
	now := time.Now()
	r.FinishedAt = &now
}

// RunSummary aggregates a user's persisted runs for the stats card.
type RunSummary struct {
	Runs          int
	CompletedRuns int
	LevelsCleared int
	Attempts      int
	Correct       int
	BestStreak    int
	AvgAccuracy   int // rounded percentage across runs, 0 when no runs
}

// LeaderboardEntry is one row of the best-streak leaderboard.
type LeaderboardEntry struct {
	UserID     int64
	FirstName  string
	BestStreak int
	Runs       int
}
