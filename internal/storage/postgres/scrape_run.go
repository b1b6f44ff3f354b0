package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"car_finder/internal/domain"
)

type ScrapeRunStore struct {
	db *sqlx.DB
}

func NewScrapeRunStore(db *sqlx.DB) *ScrapeRunStore {
	return &ScrapeRunStore{db: db}
}

func (s *ScrapeRunStore) RecordRun(ctx context.Context, run *domain.ScrapeRun) error {
	query := `
		INSERT INTO scrape_runs (
			phase, message, job_status, job_message, refreshed, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		run.Phase,
		run.Message,
		run.JobStatus,
		run.JobMessage,
		run.Refreshed,
		run.StartedAt,
		run.FinishedAt,
	).Scan(&run.ID)
}

// Latest returns the most recently finished run, or nil when there is none.
func (s *ScrapeRunStore) Latest(ctx context.Context) (*domain.ScrapeRun, error) {
	var run domain.ScrapeRun
	query := `
		SELECT id, phase, message, job_status, job_message, refreshed, started_at, finished_at
		FROM scrape_runs
		ORDER BY finished_at DESC, id DESC
		LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run, query)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	run.Duration = run.FinishedAt.Sub(run.StartedAt)
	return &run, nil
}
