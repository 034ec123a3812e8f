package repository

import (
	"context"
	"fmt"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/infra/postgres"
)

// ReminderRepository lists users eligible for the daily nudge.
type ReminderRepository struct {
	db postgres.DBTX
}

// NewReminderRepository creates a new ReminderRepository with the provided database pool.
func NewReminderRepository(db postgres.DBTX) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// ListEnabled returns the next batch of active users with reminders
// switched on, ordered by user ID for keyset pagination. Whether the
// nudge is due right now is decided by the caller per timezone.
func (r *ReminderRepository) ListEnabled(ctx context.Context, afterUserID int64, limit int) ([]entities.ReminderTarget, error) {
	query := `
		SELECT s.user_id, u.chat_id, u.first_name, s.reminder_hour, s.timezone
		FROM user_settings s
		JOIN users u ON u.id = s.user_id
		WHERE s.reminders_enabled AND u.is_active AND s.user_id > $1
		ORDER BY s.user_id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, afterUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("list enabled reminders: %w", err)
	}
	defer rows.Close()

	var targets []entities.ReminderTarget
	for rows.Next() {
		var t entities.ReminderTarget
		if err := rows.Scan(&t.UserID, &t.ChatID, &t.FirstName, &t.ReminderHour, &t.Timezone); err != nil {
			return nil, fmt.Errorf("scan reminder target: %w", err)
		}
		targets = append(targets, t)
	}

	return targets, rows.Err()
}
