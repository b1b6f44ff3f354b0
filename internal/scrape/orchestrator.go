package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"car_finder/internal/domain"
	"car_finder/internal/observe"
)

const (
	InProgressMessage = "Scraping in progress..."

	DefaultPollInterval = 2 * time.Second
)

// Config holds orchestrator timing.
type Config struct {
	PollInterval time.Duration
	// RequestTimeout bounds each status check. Zero means no bound beyond
	// the HTTP client's own timeout.
	RequestTimeout time.Duration
}

// Orchestrator drives one scrape session at a time: it starts the backend
// job, polls its status and refreshes the listings when the job finishes.
type Orchestrator struct {
	api       ScrapeAPI
	refresher Refresher
	recorder  RunRecorder
	publisher Publisher
	cfg       Config
	logger    *slog.Logger

	session *observe.Value[domain.ScrapeSession]

	// triggerMu serialises Trigger calls; mu guards the poll loop handle.
	// stops counts Stop calls so a Trigger that was stopped mid-request
	// does not arm a loop.
	triggerMu sync.Mutex
	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	stops     uint64
}

// NewOrchestrator creates an idle orchestrator. recorder and publisher may be nil.
func NewOrchestrator(
	api ScrapeAPI,
	refresher Refresher,
	recorder RunRecorder,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *Orchestrator {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &Orchestrator{
		api:       api,
		refresher: refresher,
		recorder:  recorder,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger.With("component", "scrape"),
		session: observe.NewValue(
			domain.ScrapeSession{Phase: domain.PhaseIdle},
			domain.ScrapeSession.Clone,
		),
	}
}

// Trigger starts a new scrape session. Any poll loop left from a previous
// session is stopped first. The poll loop lives until the job reaches a
// terminal status, a status check fails, Stop is called or ctx is done.
func (o *Orchestrator) Trigger(ctx context.Context) error {
	o.triggerMu.Lock()
	defer o.triggerMu.Unlock()

	o.Stop()

	o.mu.Lock()
	stops := o.stops
	o.mu.Unlock()

	o.session.Update(func(s *domain.ScrapeSession) {
		*s = domain.ScrapeSession{
			Phase:     domain.PhaseRequesting,
			Message:   InProgressMessage,
			StartedAt: time.Now(),
		}
	})
	o.logger.Info("starting scrape")

	accepted, err := o.api.StartScrape(ctx)
	if err != nil {
		sess := o.session.Update(func(s *domain.ScrapeSession) {
			s.Phase = domain.PhaseFailed
			s.Message = "Scraping failed: " + err.Error()
			s.FinishedAt = time.Now()
		})
		o.logger.Error("failed to start scrape", "error", err)
		o.finish(ctx, sess, false)
		return fmt.Errorf("trigger scrape: %w", err)
	}

	pollCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	o.mu.Lock()
	if o.stops != stops {
		o.mu.Unlock()
		cancel()
		o.logger.Info("scrape accepted after stop, not polling", "message", accepted.Message)
		return nil
	}
	o.cancel = cancel
	o.done = done
	o.mu.Unlock()

	o.session.Update(func(s *domain.ScrapeSession) {
		s.Phase = domain.PhasePolling
		s.Message = accepted.Message
	})
	o.logger.Info("scrape accepted", "message", accepted.Message, "poll_interval", o.cfg.PollInterval)

	go o.poll(pollCtx, done)

	return nil
}

// Stop cancels the active poll loop, if any, and waits for it to exit.
// A Trigger still waiting for the backend will not start polling.
// The session phase is left as it is.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	o.stops++
	cancel, done := o.cancel, o.done
	o.cancel, o.done = nil, nil
	o.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the active poll loop exits, including the listing
// refresh that follows a terminal status. It returns immediately when no
// loop is active.
func (o *Orchestrator) Wait(ctx context.Context) error {
	o.mu.Lock()
	done := o.done
	o.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Session returns a copy of the current session state.
func (o *Orchestrator) Session() domain.ScrapeSession {
	return o.session.Get()
}

// Subscribe calls fn with a copy of the session after every change.
func (o *Orchestrator) Subscribe(fn func(domain.ScrapeSession)) (unsubscribe func()) {
	return o.session.Subscribe(fn)
}

func (o *Orchestrator) poll(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(o.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.logger.Debug("scrape polling stopped")
			return
		case <-ticker.C:
			if o.checkStatus(ctx) {
				return
			}
		}
	}
}

// checkStatus runs one poll tick and reports whether polling is over.
func (o *Orchestrator) checkStatus(ctx context.Context) bool {
	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if o.cfg.RequestTimeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, o.cfg.RequestTimeout)
	}
	defer cancel()

	status, err := o.api.ScrapeStatus(reqCtx)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		sess := o.session.Update(func(s *domain.ScrapeSession) {
			s.Phase = domain.PhaseFailed
			s.Message = "Scrape status check failed: " + err.Error()
			s.FinishedAt = time.Now()
		})
		o.logger.Error("failed to fetch scrape status", "error", err)
		o.finish(ctx, sess, false)
		return true
	}

	if !status.Terminal() {
		o.session.Update(func(s *domain.ScrapeSession) {
			s.LastStatus = status
		})
		o.logger.Debug("scrape running", "status", status.Status, "message", status.Message)
		return false
	}

	phase := domain.PhaseCompleted
	if status.Status == domain.JobStatusFailed {
		phase = domain.PhaseFailed
	}

	sess := o.session.Update(func(s *domain.ScrapeSession) {
		s.Phase = phase
		s.LastStatus = status
		s.FinishedAt = time.Now()
	})
	o.logger.Info("scrape finished", "status", status.Status, "message", status.Message)

	if err := o.refresher.Refresh(ctx); err != nil {
		o.logger.Error("failed to refresh listings after scrape", "error", err)
	}

	o.finish(ctx, sess, true)
	return true
}

func (o *Orchestrator) finish(ctx context.Context, sess domain.ScrapeSession, refreshed bool) {
	run := &domain.ScrapeRun{
		Phase:      sess.Phase,
		Message:    sess.Message,
		Refreshed:  refreshed,
		StartedAt:  sess.StartedAt,
		FinishedAt: sess.FinishedAt,
		Duration:   sess.FinishedAt.Sub(sess.StartedAt),
	}
	if sess.LastStatus != nil {
		run.JobStatus = sess.LastStatus.Status
		run.JobMessage = sess.LastStatus.Message
	}

	if o.recorder != nil {
		if err := o.recorder.RecordRun(ctx, run); err != nil {
			o.logger.Warn("failed to record scrape run", "error", err)
		}
	}

	if o.publisher != nil {
		if err := o.publisher.PublishScrapeRun(ctx, run); err != nil {
			o.logger.Warn("failed to publish scrape run", "error", err)
		}
	}

	o.logger.Info("scrape session finished",
		"phase", run.Phase,
		"refreshed", run.Refreshed,
		"duration", run.Duration,
	)
}
