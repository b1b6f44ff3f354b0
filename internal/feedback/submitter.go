package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"car_finder/internal/domain"
)

var (
	ErrInvalidPreference = errors.New("preference must be like or dislike")
	ErrMissingCarID      = errors.New("car id is required")
)

// Submitter sends like/dislike signals. It holds no state: a submission
// never touches listings or scrape sessions and is never retried.
type Submitter struct {
	api       FeedbackAPI
	recorder  Recorder
	publisher Publisher
	logger    *slog.Logger
}

// NewSubmitter creates a submitter. recorder and publisher may be nil.
func NewSubmitter(api FeedbackAPI, recorder Recorder, publisher Publisher, logger *slog.Logger) *Submitter {
	return &Submitter{
		api:       api,
		recorder:  recorder,
		publisher: publisher,
		logger:    logger.With("component", "feedback"),
	}
}

// Submit sends one feedback signal for carID and returns the backend's
// acknowledgement message. A zero carID or an unknown preference is
// rejected without a request, since the backend answers 400 for both.
func (s *Submitter) Submit(ctx context.Context, carID int64, pref domain.Preference) (string, error) {
	if carID == 0 {
		return "", ErrMissingCarID
	}
	if !pref.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, pref)
	}

	fb := domain.Feedback{
		CarID:      carID,
		Preference: pref,
		SentAt:     time.Now().UTC(),
	}

	msg, err := s.api.SubmitFeedback(ctx, fb)
	if err != nil {
		s.logger.Error("failed to send feedback",
			"car_id", carID,
			"preference", pref,
			"error", err,
		)
		return "", fmt.Errorf("send feedback for car %d: %w", carID, err)
	}

	s.logger.Info("feedback recorded",
		"car_id", carID,
		"preference", pref,
		"message", msg,
	)

	if s.recorder != nil {
		if err := s.recorder.RecordFeedback(ctx, &fb); err != nil {
			s.logger.Warn("failed to archive feedback", "car_id", carID, "error", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishFeedback(ctx, &fb); err != nil {
			s.logger.Warn("failed to publish feedback", "car_id", carID, "error", err)
		}
	}

	return msg, nil
}
