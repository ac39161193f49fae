package service

import (
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/repository"
	"learn_track_backend/pkg/monitoring"
	"time"
)

// DailyTestService enforces the one-test-per-learner-per-day cadence and
// computes the short-horizon trend from the two most recent tests.
type DailyTestService struct {
	LearnerRepo *repository.LearnerRepository
	TestRepo    *repository.DailyTestRepository
	TopicRepo   *repository.TopicRepository
}

func NewDailyTestService(
	learnerRepo *repository.LearnerRepository,
	testRepo *repository.DailyTestRepository,
	topicRepo *repository.TopicRepository,
) *DailyTestService {
	return &DailyTestService{
		LearnerRepo: learnerRepo,
		TestRepo:    testRepo,
		TopicRepo:   topicRepo,
	}
}

type DailyTestSubmission struct {
	Topic      string `json:"topic"`
	Attempts   int    `json:"attempts"`
	Correct    int    `json:"correct"`
	TimeSpent  int    `json:"timeSpent"`
	Reflection string `json:"reflection"`
}

// CanTakeTest reports whether no test exists for this learner on today's
// calendar date.
func (s *DailyTestService) CanTakeTest(learnerID string) (bool, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return false, err
	}
	today := time.Now().Format(model.DateLayout)
	_, taken := s.TestRepo.FindByDate(learnerID, today)
	return !taken, nil
}

// SubmitTest validates the submission and persists it with the current
// timestamp and derived calendar date. The cadence check is delegated to the
// store's conditional insert so a concurrent submission for the same day
// cannot slip through between check and write.
func (s *DailyTestService) SubmitTest(learnerID string, sub DailyTestSubmission) (*model.DailyTest, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}
	if err := validatePractice(sub.Topic, sub.Attempts, sub.Correct, sub.TimeSpent); err != nil {
		return nil, err
	}

	now := time.Now()
	test := model.DailyTest{
		Activity: model.Activity{
			ID:        model.GenerateUUID(),
			LearnerID: learnerID,
			Topic:     sub.Topic,
			Attempts:  sub.Attempts,
			Correct:   sub.Correct,
			TimeSpent: sub.TimeSpent,
			Timestamp: now,
		},
		Reflection: sub.Reflection,
		Date:       now.Format(model.DateLayout),
	}

	if err := s.TestRepo.Append(test); err != nil {
		monitoring.TestSubmissionCounter.WithLabelValues("cadence_violation").Inc()
		return nil, err
	}

	// Only a committed submission registers its topic; a rejected one must
	// leave no trace anywhere, the registry included.
	s.TopicRepo.Add(sub.Topic)

	monitoring.TestSubmissionCounter.WithLabelValues("accepted").Inc()
	return &test, nil
}

// GetTestHistory returns tests from the last `days` days, most recent first.
func (s *DailyTestService) GetTestHistory(learnerID string, days int) ([]model.DailyTest, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}
	return s.TestRepo.ListSince(learnerID, days), nil
}

// GetTestAnalysis compares the success rates of the two most recent tests in
// the last 7 days. It reads only; repeated calls without new submissions
// return the same result.
func (s *DailyTestService) GetTestAnalysis(learnerID string) (*model.TestAnalysis, error) {
	tests, err := s.GetTestHistory(learnerID, 7)
	if err != nil {
		return nil, err
	}

	if len(tests) == 0 {
		return &model.TestAnalysis{
			Trend:   "No recent tests",
			Message: "Take your first daily test to start tracking progress.",
		}, nil
	}

	if len(tests) == 1 {
		return &model.TestAnalysis{
			Trend:   "Getting started",
			Message: "Great job taking your first test! Keep it up tomorrow.",
		}, nil
	}

	latestRate := tests[0].SuccessRate()
	previousRate := tests[1].SuccessRate()

	switch {
	case latestRate > previousRate:
		return &model.TestAnalysis{
			Trend:   "Improving",
			Message: "You adjusted well after your last session.",
		}, nil
	case latestRate < previousRate:
		return &model.TestAnalysis{
			Trend:   "Declining",
			Message: "If this continues, a short reset could help.",
		}, nil
	default:
		return &model.TestAnalysis{
			Trend:   "Stable",
			Message: "Your performance is consistent across sessions.",
		}, nil
	}
}
