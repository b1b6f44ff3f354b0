// Package view renders listing and scrape session state for a terminal.
package view

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"car_finder/internal/domain"
)

// Renderer writes state to out. It is safe for concurrent use.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer
}

func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// Listings renders the listing state. votes, when non-nil, adds a column
// with the last preference sent for each car.
func (r *Renderer) Listings(st domain.ListingState, votes map[int64]domain.Preference) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st.Loading && len(st.Listings) == 0 {
		fmt.Fprintln(r.out, "Loading cars...")
		return
	}
	if st.Err != "" {
		fmt.Fprintf(r.out, "Error: %s\n", st.Err)
		if len(st.Listings) == 0 {
			return
		}
	}
	if len(st.Listings) == 0 {
		fmt.Fprintln(r.out, "No cars found.")
		return
	}

	t := newTable(r.out)
	header := table.Row{"ID", "Car", "Price", "Mileage", "Location", "Listing"}
	if votes != nil {
		header = append(header, "Vote")
	}
	t.AppendHeader(header)

	for _, car := range st.Listings {
		row := table.Row{
			car.ID,
			car.Title(),
			formatPrice(car.Price),
			formatMileage(car.Mileage),
			deref(car.Location),
			car.URL,
		}
		if votes != nil {
			row = append(row, string(votes[car.ID]))
		}
		t.AppendRow(row)
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d cars", len(st.Listings))})
	t.Render()
}

// Session renders the scrape message and the last known job status.
func (r *Renderer) Session(sess domain.ScrapeSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess.Message != "" {
		fmt.Fprintln(r.out, sess.Message)
	}
	if sess.LastStatus != nil {
		fmt.Fprintf(r.out, "Scrape Status: %s - %s\n", sess.LastStatus.Status, sess.LastStatus.Message)
	}
}

// Run renders one archived scrape run.
func (r *Renderer) Run(run *domain.ScrapeRun) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run == nil {
		fmt.Fprintln(r.out, "No scrape runs recorded.")
		return
	}

	t := newTable(r.out)
	t.AppendRows([]table.Row{
		{"Phase", run.Phase},
		{"Message", run.Message},
		{"Job status", run.JobStatus},
		{"Job message", run.JobMessage},
		{"Listings refreshed", run.Refreshed},
		{"Started", run.StartedAt.Local().Format(time.DateTime)},
		{"Duration", run.Duration.Round(time.Second)},
	})
	t.Render()
}

// Feedback renders the backend's acknowledgement of a feedback signal.
func (r *Renderer) Feedback(carID int64, pref domain.Preference, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "Feedback for car %d (%s): %s\n", carID, pref, msg)
}

func formatPrice(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}

func formatMileage(mileage *int) string {
	if mileage == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d miles", *mileage)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
