package scrape

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"car_finder/internal/domain"
)

type ScrapeAPI interface {
	StartScrape(ctx context.Context) (*domain.ScrapeAccepted, error)
	ScrapeStatus(ctx context.Context) (*domain.ScrapeStatus, error)
}

type Refresher interface {
	Refresh(ctx context.Context) error
}

type RunRecorder interface {
	RecordRun(ctx context.Context, run *domain.ScrapeRun) error
}

type Publisher interface {
	PublishScrapeRun(ctx context.Context, run *domain.ScrapeRun) error
}
