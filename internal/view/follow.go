package view

import (
	"sync"

	"car_finder/internal/domain"
)

// SessionSource is anything that publishes scrape session changes.
type SessionSource interface {
	Subscribe(fn func(domain.ScrapeSession)) (unsubscribe func())
}

// ListingSource is anything that publishes listing state changes.
type ListingSource interface {
	Subscribe(fn func(domain.ListingState)) (unsubscribe func())
}

// FollowSession prints the session every time its message or job status
// changes. Repeated identical statuses are printed once.
func (r *Renderer) FollowSession(src SessionSource) (unsubscribe func()) {
	var mu sync.Mutex
	var lastMessage, lastStatus string
	return src.Subscribe(func(sess domain.ScrapeSession) {
		mu.Lock()
		defer mu.Unlock()

		status := ""
		if sess.LastStatus != nil {
			status = sess.LastStatus.Status + "\x00" + sess.LastStatus.Message
		}
		if sess.Message == lastMessage && status == lastStatus {
			return
		}

		shown := sess
		if sess.Message == lastMessage {
			shown.Message = ""
		}
		if status == lastStatus {
			shown.LastStatus = nil
		}
		lastMessage, lastStatus = sess.Message, status

		r.Session(shown)
	})
}

// FollowListings re-renders the listings after every finished refresh.
func (r *Renderer) FollowListings(src ListingSource, votes func([]domain.Car) map[int64]domain.Preference) (unsubscribe func()) {
	return src.Subscribe(func(st domain.ListingState) {
		if st.Loading {
			return
		}
		var v map[int64]domain.Preference
		if votes != nil {
			v = votes(st.Listings)
		}
		r.Listings(st, v)
	})
}
