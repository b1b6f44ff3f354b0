package listing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"car_finder/internal/domain"
	"car_finder/internal/observe"
)

// Store holds the most recently fetched listing collection.
type Store struct {
	lister  CarLister
	archive Archive
	logger  *slog.Logger
	state   *observe.Value[domain.ListingState]
}

// NewStore creates a store in the loading state. archive may be nil.
func NewStore(lister CarLister, archive Archive, logger *slog.Logger) *Store {
	return &Store{
		lister:  lister,
		archive: archive,
		logger:  logger.With("component", "listing"),
		state: observe.NewValue(
			domain.ListingState{Loading: true},
			domain.ListingState.Clone,
		),
	}
}

// Refresh fetches the full collection and replaces the held listings. On
// failure the previous listings are kept and Err describes the failure.
// Callers must not run Refresh concurrently with itself.
func (s *Store) Refresh(ctx context.Context) error {
	s.state.Update(func(st *domain.ListingState) {
		st.Loading = true
	})

	s.logger.Debug("fetching cars")

	cars, err := s.lister.ListCars(ctx)
	if err != nil {
		s.state.Update(func(st *domain.ListingState) {
			st.Loading = false
			st.Err = err.Error()
		})
		s.logger.Error("failed to fetch cars", "error", err)
		return fmt.Errorf("refresh listings: %w", err)
	}

	now := time.Now()
	s.state.Update(func(st *domain.ListingState) {
		st.Listings = cars
		st.Loading = false
		st.Err = ""
		st.UpdatedAt = now
	})

	s.logger.Info("listings refreshed", "count", len(cars))

	if s.archive != nil {
		if err := s.archive.SaveSnapshot(ctx, cars); err != nil {
			s.logger.Warn("failed to archive listings", "error", err)
		}
	}

	return nil
}

// State returns a copy of the current listing state.
func (s *Store) State() domain.ListingState {
	return s.state.Get()
}

// Subscribe calls fn with a copy of the state after every change.
func (s *Store) Subscribe(fn func(domain.ListingState)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}
