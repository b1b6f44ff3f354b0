package domain

import (
	"encoding/json"
	"maps"
	"time"
)

// Phase is the position of a scrape session in its state machine.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseRequesting Phase = "requesting"
	PhasePolling    Phase = "polling"
	PhaseCompleted  Phase = "completed"
	PhaseFailed     Phase = "failed"
)

// Terminal reports whether no further transitions happen in this session.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// Backend job statuses the poll loop distinguishes. Anything else means running.
const (
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ScrapeAccepted is the backend's answer to a scrape start request.
type ScrapeAccepted struct {
	Message string `json:"message"`
}

// ScrapeStatus is one status-check response. Fields the client does not know
// about are kept in Extra.
type ScrapeStatus struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Extra   map[string]json.RawMessage `json:"-"`
}

// Terminal reports whether the backend job has finished.
func (s ScrapeStatus) Terminal() bool {
	return s.Status == JobStatusCompleted || s.Status == JobStatusFailed
}

func (s *ScrapeStatus) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var known struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	delete(raw, "status")
	delete(raw, "message")

	s.Status = known.Status
	s.Message = known.Message
	s.Extra = nil
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

func (s ScrapeStatus) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+2)
	for k, v := range s.Extra {
		out[k] = v
	}
	out["status"] = s.Status
	out["message"] = s.Message
	return json.Marshal(out)
}

// ScrapeSession is the state held by the scrape orchestrator.
type ScrapeSession struct {
	Phase      Phase
	Message    string
	LastStatus *ScrapeStatus
	StartedAt  time.Time
	FinishedAt time.Time
}

// Clone returns a copy that shares nothing mutable with s.
func (s ScrapeSession) Clone() ScrapeSession {
	out := s
	if s.LastStatus != nil {
		st := *s.LastStatus
		st.Extra = maps.Clone(s.LastStatus.Extra)
		out.LastStatus = &st
	}
	return out
}

// ScrapeRun records one finished scrape session.
type ScrapeRun struct {
	ID         int64         `json:"id" db:"id"`
	Phase      Phase         `json:"phase" db:"phase"`
	Message    string        `json:"message" db:"message"`
	JobStatus  string        `json:"job_status" db:"job_status"`
	JobMessage string        `json:"job_message" db:"job_message"`
	Refreshed  bool          `json:"refreshed" db:"refreshed"`
	StartedAt  time.Time     `json:"started_at" db:"started_at"`
	FinishedAt time.Time     `json:"finished_at" db:"finished_at"`
	Duration   time.Duration `json:"duration" db:"-"`
}
