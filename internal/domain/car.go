package domain

import (
	"strconv"
	"strings"
	"time"
)

// Car is one scraped listing as served by the backend.
type Car struct {
	ID       int64   `json:"id" db:"id"`
	Year     int     `json:"year" db:"year"`
	Make     string  `json:"make" db:"make"`
	Model    string  `json:"model" db:"model"`
	Price    float64 `json:"price" db:"price"`
	Mileage  *int    `json:"mileage" db:"mileage"`
	Location *string `json:"location" db:"location"`
	URL      string  `json:"url" db:"url"`

	VIN              *string `json:"vin,omitempty" db:"vin"`
	SourceSite       *string `json:"source_site,omitempty" db:"source_site"`
	ScrapedTimestamp *string `json:"scraped_timestamp,omitempty" db:"scraped_timestamp"`
}

// Title is the "year make model" heading of a listing.
func (c Car) Title() string {
	parts := make([]string, 0, 3)
	if c.Year != 0 {
		parts = append(parts, strconv.Itoa(c.Year))
	}
	if c.Make != "" {
		parts = append(parts, c.Make)
	}
	if c.Model != "" {
		parts = append(parts, c.Model)
	}
	return strings.Join(parts, " ")
}

// ListingState is the state held by the listing store.
type ListingState struct {
	Listings  []Car
	Loading   bool
	Err       string
	UpdatedAt time.Time
}

// Clone returns a copy that shares nothing mutable with s.
func (s ListingState) Clone() ListingState {
	out := s
	if s.Listings != nil {
		out.Listings = make([]Car, len(s.Listings))
		copy(out.Listings, s.Listings)
	}
	return out
}
