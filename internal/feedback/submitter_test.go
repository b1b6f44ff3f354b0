package feedback

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"car_finder/internal/domain"
	"car_finder/internal/feedback/mocks"
)

type SubmitterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api       *mocks.MockFeedbackAPI
	recorder  *mocks.MockRecorder
	publisher *mocks.MockPublisher

	submitter *Submitter
	logger    *slog.Logger
}

func (s *SubmitterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.api = mocks.NewMockFeedbackAPI(s.ctrl)
	s.recorder = mocks.NewMockRecorder(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.submitter = NewSubmitter(s.api, s.recorder, s.publisher, s.logger)
}

func (s *SubmitterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSubmitterTestSuite(t *testing.T) {
	suite.Run(t, new(SubmitterTestSuite))
}

func feedbackFor(carID int64, pref domain.Preference) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		fb, ok := x.(domain.Feedback)
		return ok && fb.CarID == carID && fb.Preference == pref
	})
}

func (s *SubmitterTestSuite) TestSubmit_Like() {
	ctx := context.Background()

	s.api.EXPECT().SubmitFeedback(ctx, feedbackFor(42, domain.PreferenceLike)).
		Return("Feedback for car 42 (like) recorded successfully!", nil)
	s.recorder.EXPECT().RecordFeedback(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishFeedback(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, fb *domain.Feedback) error {
			s.Equal(int64(42), fb.CarID)
			s.Equal(domain.PreferenceLike, fb.Preference)
			s.False(fb.SentAt.IsZero())
			return nil
		},
	)

	msg, err := s.submitter.Submit(ctx, 42, domain.PreferenceLike)

	s.NoError(err)
	s.Equal("Feedback for car 42 (like) recorded successfully!", msg)
}

func (s *SubmitterTestSuite) TestSubmit_BackendFailure() {
	ctx := context.Background()

	s.api.EXPECT().SubmitFeedback(ctx, feedbackFor(7, domain.PreferenceDislike)).
		Return("", errors.New("unexpected status: 500"))

	msg, err := s.submitter.Submit(ctx, 7, domain.PreferenceDislike)

	s.Error(err)
	s.Empty(msg)
	s.Contains(err.Error(), "send feedback for car 7")
}

func (s *SubmitterTestSuite) TestSubmit_InvalidPreference() {
	_, err := s.submitter.Submit(context.Background(), 42, domain.Preference("meh"))

	s.ErrorIs(err, ErrInvalidPreference)
}

func (s *SubmitterTestSuite) TestSubmit_MissingCarID() {
	s.api.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.submitter.Submit(context.Background(), 0, domain.PreferenceLike)

	s.ErrorIs(err, ErrMissingCarID)
}

func (s *SubmitterTestSuite) TestSubmit_SinkErrorsIgnored() {
	ctx := context.Background()

	s.api.EXPECT().SubmitFeedback(ctx, gomock.Any()).Return("ok", nil)
	s.recorder.EXPECT().RecordFeedback(ctx, gomock.Any()).Return(errors.New("db down"))
	s.publisher.EXPECT().PublishFeedback(ctx, gomock.Any()).Return(errors.New("channel closed"))

	msg, err := s.submitter.Submit(ctx, 3, domain.PreferenceLike)

	s.NoError(err)
	s.Equal("ok", msg)
}

func (s *SubmitterTestSuite) TestSubmit_NilSinks() {
	ctx := context.Background()

	submitter := NewSubmitter(s.api, nil, nil, s.logger)
	s.api.EXPECT().SubmitFeedback(ctx, gomock.Any()).Return("ok", nil)

	_, err := submitter.Submit(ctx, 3, domain.PreferenceDislike)

	s.NoError(err)
}
