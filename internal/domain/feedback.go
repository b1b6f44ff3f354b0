package domain

import "time"

// Preference is a user's like/dislike signal for one listing.
type Preference string

const (
	PreferenceLike    Preference = "like"
	PreferenceDislike Preference = "dislike"
)

// Valid reports whether p is one of the known preferences.
func (p Preference) Valid() bool {
	return p == PreferenceLike || p == PreferenceDislike
}

// Feedback is the body sent to the training endpoint.
type Feedback struct {
	CarID      int64      `json:"carId" db:"car_id"`
	Preference Preference `json:"preference" db:"preference"`
	SentAt     time.Time  `json:"-" db:"sent_at"`
}
