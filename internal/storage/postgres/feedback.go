package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"car_finder/internal/domain"
)

type FeedbackStore struct {
	db *sqlx.DB
}

func NewFeedbackStore(db *sqlx.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) RecordFeedback(ctx context.Context, fb *domain.Feedback) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO feedback (car_id, preference, sent_at) VALUES ($1, $2, $3)",
		fb.CarID, fb.Preference, fb.SentAt,
	)
	return err
}

// LatestByCarIDs returns the most recent preference recorded for each of ids.
func (s *FeedbackStore) LatestByCarIDs(ctx context.Context, ids []int64) (map[int64]domain.Preference, error) {
	if len(ids) == 0 {
		return make(map[int64]domain.Preference), nil
	}

	query := `
		SELECT DISTINCT ON (car_id) car_id, preference
		FROM feedback
		WHERE car_id = ANY($1)
		ORDER BY car_id, sent_at DESC, id DESC`

	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64]domain.Preference)
	for rows.Next() {
		var carID int64
		var pref string
		if err := rows.Scan(&carID, &pref); err != nil {
			return nil, err
		}
		result[carID] = domain.Preference(pref)
	}

	return result, rows.Err()
}
