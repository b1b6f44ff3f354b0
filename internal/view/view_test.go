package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"car_finder/internal/domain"
	"car_finder/internal/observe"
)

func ptr[T any](v T) *T {
	return &v
}

func cars() []domain.Car {
	return []domain.Car{
		{ID: 1, Year: 2022, Make: "Toyota", Model: "Camry", Price: 25000, Mileage: ptr(15000), Location: ptr("Los Angeles, CA"), URL: "http://example.com/car1"},
		{ID: 2, Year: 2015, Make: "Ford", Model: "F-150", Price: 18999.99, URL: "http://example.com/car2"},
	}
}

func TestListings_Loading(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Listings(domain.ListingState{Loading: true}, nil)

	assert.Equal(t, "Loading cars...\n", buf.String())
}

func TestListings_ErrorWithoutListings(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Listings(domain.ListingState{Err: "list cars: unexpected status: 500"}, nil)

	assert.Equal(t, "Error: list cars: unexpected status: 500\n", buf.String())
}

func TestListings_Table(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Listings(domain.ListingState{Listings: cars()}, nil)

	out := buf.String()
	assert.Contains(t, out, "2022 Toyota Camry")
	assert.Contains(t, out, "$25000")
	assert.Contains(t, out, "15000 miles")
	assert.Contains(t, out, "Los Angeles, CA")
	assert.Contains(t, out, "$18999.99")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "2 cars")
	assert.NotContains(t, out, "CARS")
	assert.NotContains(t, out, "Vote")
}

func TestListings_Votes(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Listings(domain.ListingState{Listings: cars()}, map[int64]domain.Preference{
		2: domain.PreferenceDislike,
	})

	out := buf.String()
	assert.Contains(t, out, "Vote")
	assert.Contains(t, out, "dislike")
}

func TestListings_Empty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Listings(domain.ListingState{Listings: []domain.Car{}}, nil)

	assert.Equal(t, "No cars found.\n", buf.String())
}

func TestSession(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Session(domain.ScrapeSession{
		Phase:      domain.PhasePolling,
		Message:    "Job accepted",
		LastStatus: &domain.ScrapeStatus{Status: "running", Message: "50%"},
	})

	assert.Equal(t, "Job accepted\nScrape Status: running - 50%\n", buf.String())
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Run(nil)
	assert.Equal(t, "No scrape runs recorded.\n", buf.String())

	buf.Reset()
	r.Run(&domain.ScrapeRun{
		Phase:      domain.PhaseCompleted,
		Message:    "Job accepted",
		JobStatus:  "completed",
		Refreshed:  true,
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
		Duration:   3 * time.Second,
	})
	assert.Contains(t, buf.String(), "completed")
	assert.Contains(t, buf.String(), "3s")
}

func TestFeedback(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Feedback(42, domain.PreferenceLike, "recorded")

	assert.Equal(t, "Feedback for car 42 (like): recorded\n", buf.String())
}

func TestFollowSession_PrintsChangesOnce(t *testing.T) {
	var buf bytes.Buffer
	src := observe.NewValue(domain.ScrapeSession{}, domain.ScrapeSession.Clone)

	unsubscribe := New(&buf).FollowSession(src)
	defer unsubscribe()

	src.Update(func(s *domain.ScrapeSession) {
		s.Phase = domain.PhaseRequesting
		s.Message = "Scraping in progress..."
	})
	src.Update(func(s *domain.ScrapeSession) {
		s.Phase = domain.PhasePolling
		s.Message = "Job accepted"
	})
	for i := 0; i < 2; i++ {
		src.Update(func(s *domain.ScrapeSession) {
			s.LastStatus = &domain.ScrapeStatus{Status: "running", Message: "50%"}
		})
	}
	src.Update(func(s *domain.ScrapeSession) {
		s.Phase = domain.PhaseCompleted
		s.LastStatus = &domain.ScrapeStatus{Status: "completed", Message: "done"}
	})

	assert.Equal(t,
		"Scraping in progress...\n"+
			"Job accepted\n"+
			"Scrape Status: running - 50%\n"+
			"Scrape Status: completed - done\n",
		buf.String(),
	)
}

func TestFollowListings_SkipsLoading(t *testing.T) {
	var buf bytes.Buffer
	src := observe.NewValue(domain.ListingState{Loading: true}, domain.ListingState.Clone)

	unsubscribe := New(&buf).FollowListings(src, nil)
	defer unsubscribe()

	src.Update(func(s *domain.ListingState) { s.Loading = true })
	assert.Empty(t, buf.String())

	src.Update(func(s *domain.ListingState) {
		s.Loading = false
		s.Listings = cars()
	})
	assert.Contains(t, buf.String(), "2022 Toyota Camry")
}
