package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"car_finder/internal/api"
	"car_finder/internal/config"
	"car_finder/internal/domain"
	"car_finder/internal/feedback"
	"car_finder/internal/listing"
	"car_finder/internal/logging"
	"car_finder/internal/publisher"
	"car_finder/internal/scrape"
	"car_finder/internal/storage/postgres"
	"car_finder/internal/view"
)

// app holds everything a command needs. Optional parts are nil when
// disabled in the configuration.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	client    *api.Client
	store     *listing.Store
	orch      *scrape.Orchestrator
	submitter *feedback.Submitter
	renderer  *view.Renderer

	db        *sqlx.DB
	archive   *postgres.Archive
	runs      *postgres.ScrapeRunStore
	votes     *postgres.FeedbackStore
	publisher *publisher.RabbitMQ
}

func newApp(ctx context.Context, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		renderer: view.New(stdout),
	}

	if cfg.Database.Enabled {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.db = db
		a.archive = postgres.NewArchive(db)
		a.runs = postgres.NewScrapeRunStore(db)
		a.votes = postgres.NewFeedbackStore(db)
		logger.Info("connected to database")
	}

	if cfg.RabbitMQ.Enabled {
		pub, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		a.publisher = pub
	}

	a.client = api.New(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, logger)

	// Interface values stay nil when the backing component is disabled.
	var (
		listingArchive listing.Archive
		runRecorder    scrape.RunRecorder
		runPublisher   scrape.Publisher
		fbRecorder     feedback.Recorder
		fbPublisher    feedback.Publisher
	)
	if a.db != nil {
		listingArchive = a.archive
		runRecorder = a.runs
		fbRecorder = a.votes
	}
	if a.publisher != nil {
		runPublisher = a.publisher
		fbPublisher = a.publisher
	}

	a.store = listing.NewStore(a.client, listingArchive, logger)
	a.orch = scrape.NewOrchestrator(a.client, a.store, runRecorder, runPublisher, logger, scrape.Config{
		PollInterval:   cfg.Scrape.PollInterval,
		RequestTimeout: cfg.Scrape.StatusTimeout,
	})
	a.submitter = feedback.NewSubmitter(a.client, fbRecorder, fbPublisher, logger)

	return a, nil
}

// voteLookup returns the last sent preference per car, or nil when no
// database is configured.
func (a *app) voteLookup(ctx context.Context) func([]domain.Car) map[int64]domain.Preference {
	if a.votes == nil {
		return nil
	}
	return func(cars []domain.Car) map[int64]domain.Preference {
		ids := make([]int64, len(cars))
		for i, car := range cars {
			ids[i] = car.ID
		}
		votes, err := a.votes.LatestByCarIDs(ctx, ids)
		if err != nil {
			a.logger.Warn("failed to load feedback history", "error", err)
			return nil
		}
		return votes
	}
}

func (a *app) renderListings(ctx context.Context) {
	st := a.store.State()
	var votes map[int64]domain.Preference
	if lookup := a.voteLookup(ctx); lookup != nil {
		votes = lookup(st.Listings)
	}
	a.renderer.Listings(st, votes)
}

func (a *app) Close() {
	if a.orch != nil {
		a.orch.Stop()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
