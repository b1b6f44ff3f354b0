package feedback

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"car_finder/internal/domain"
)

type FeedbackAPI interface {
	SubmitFeedback(ctx context.Context, fb domain.Feedback) (string, error)
}

type Recorder interface {
	RecordFeedback(ctx context.Context, fb *domain.Feedback) error
}

type Publisher interface {
	PublishFeedback(ctx context.Context, fb *domain.Feedback) error
}
