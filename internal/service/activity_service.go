package service

import (
	"fmt"
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/repository"
	"learn_track_backend/internal/util"
	"time"
)

// ActivityService records practice sessions. Activities are validated once at
// submission and immutable afterwards.
type ActivityService struct {
	LearnerRepo  *repository.LearnerRepository
	ActivityRepo *repository.ActivityRepository
	TopicRepo    *repository.TopicRepository
}

func NewActivityService(
	learnerRepo *repository.LearnerRepository,
	activityRepo *repository.ActivityRepository,
	topicRepo *repository.TopicRepository,
) *ActivityService {
	return &ActivityService{
		LearnerRepo:  learnerRepo,
		ActivityRepo: activityRepo,
		TopicRepo:    topicRepo,
	}
}

type ActivitySubmission struct {
	Topic     string `json:"topic"`
	Attempts  int    `json:"attempts"`
	Correct   int    `json:"correct"`
	TimeSpent int    `json:"timeSpent"`
}

// validatePractice applies the shared numeric invariants of activities and
// daily tests. Violations reject the whole submission; nothing is written.
func validatePractice(topic string, attempts, correct, timeSpent int) error {
	if topic == "" {
		return fmt.Errorf("%w: topic is required", util.ErrValidation)
	}
	if attempts < 1 {
		return fmt.Errorf("%w: attempts must be at least 1", util.ErrValidation)
	}
	if correct < 0 {
		return fmt.Errorf("%w: correct answers cannot be negative", util.ErrValidation)
	}
	if correct > attempts {
		return fmt.Errorf("%w: correct answers cannot exceed total attempts", util.ErrValidation)
	}
	if timeSpent < 0 {
		return fmt.Errorf("%w: time spent cannot be negative", util.ErrValidation)
	}
	return nil
}

func (s *ActivityService) AddActivity(learnerID string, sub ActivitySubmission) (*model.Activity, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}
	if err := validatePractice(sub.Topic, sub.Attempts, sub.Correct, sub.TimeSpent); err != nil {
		return nil, err
	}

	// Unknown topics register themselves on first use.
	s.TopicRepo.Add(sub.Topic)

	activity := model.Activity{
		ID:        model.GenerateUUID(),
		LearnerID: learnerID,
		Topic:     sub.Topic,
		Attempts:  sub.Attempts,
		Correct:   sub.Correct,
		TimeSpent: sub.TimeSpent,
		Timestamp: time.Now(),
	}
	s.ActivityRepo.Append(activity)
	return &activity, nil
}

func (s *ActivityService) GetActivities(learnerID string) ([]model.Activity, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}
	return s.ActivityRepo.ListByLearner(learnerID), nil
}

func (s *ActivityService) GetRecentActivities(learnerID string, days int) ([]model.Activity, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}
	return s.ActivityRepo.ListRecent(learnerID, days), nil
}
