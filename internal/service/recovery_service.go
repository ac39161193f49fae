package service

import (
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/repository"
	"strings"
)

// RecoveryService turns the failure analysis plus raw recent activity into
// actionable suggestions, encouragement and a recovery-progress signal.
type RecoveryService struct {
	Failure      *FailureService
	LearnerRepo  *repository.LearnerRepository
	ActivityRepo *repository.ActivityRepository
	TestRepo     *repository.DailyTestRepository
}

func NewRecoveryService(
	failure *FailureService,
	learnerRepo *repository.LearnerRepository,
	activityRepo *repository.ActivityRepository,
	testRepo *repository.DailyTestRepository,
) *RecoveryService {
	return &RecoveryService{
		Failure:      failure,
		LearnerRepo:  learnerRepo,
		ActivityRepo: activityRepo,
		TestRepo:     testRepo,
	}
}

// GenerateGuidance always runs the failure analysis first, then layers
// suggestions on top of it. Suggestions from different rules may overlap in
// wording; that duplication is accepted behavior rather than deduped away.
func (s *RecoveryService) GenerateGuidance(learnerID string) (*model.Guidance, error) {
	analysis, err := s.Failure.Analyze(learnerID)
	if err != nil {
		return nil, err
	}

	activities := s.ActivityRepo.ListRecent(learnerID, activityWindowDays)

	guidance := &model.Guidance{
		Status:         analysis.RiskLevel,
		PrimaryMessage: analysis.Insight,
		Suggestions:    []string{},
	}

	if len(analysis.LaggingTopics) > 0 {
		focus := analysis.LaggingTopics
		if len(focus) > 2 {
			focus = focus[:2]
		}
		guidance.Suggestions = append(guidance.Suggestions, "Focus on: "+strings.Join(focus, ", "))
	}

	switch analysis.RiskLevel {
	case model.RiskSupportRecommended:
		guidance.Suggestions = append(guidance.Suggestions,
			"Consider shorter, more frequent study sessions",
			"Break complex topics into smaller parts",
		)
		guidance.WarningMessage = "If this continues, a short reset could help."
	case model.RiskNeedsAttention:
		guidance.Suggestions = append(guidance.Suggestions,
			"Try a different approach to challenging topics",
			"Maintain consistent daily practice",
		)
	}

	if analysis.RecoveryDetected {
		guidance.Encouragement = "You adjusted well after your last session."
	} else if analysis.RiskLevel == model.RiskOnTrack {
		guidance.Encouragement = "Your learning pattern shows steady progress."
	}

	if len(activities) > 0 {
		totalTime := 0
		for _, activity := range activities {
			totalTime += activity.TimeSpent
		}
		if float64(totalTime)/float64(len(activities)) > 15 {
			guidance.Suggestions = append(guidance.Suggestions, "Consider shorter, focused sessions")
		}
	}

	return guidance, nil
}

// GetRecoveryStrategies is a pure lookup keyed by risk tier. Any tier other
// than the two named cases, On Track included, falls through to the default
// maintenance list.
func (s *RecoveryService) GetRecoveryStrategies(riskLevel model.RiskLevel, laggingTopics []string) []string {
	var strategies []string

	switch riskLevel {
	case model.RiskSupportRecommended:
		strategies = []string{
			"Take a 1-2 day break to reset your approach",
			"Focus on one topic at a time",
			"Use active recall instead of passive reading",
		}
	case model.RiskNeedsAttention:
		strategies = []string{
			"Review your study environment for distractions",
			"Try explaining concepts out loud",
			"Connect new topics to what you already know",
		}
	default:
		strategies = []string{
			"Continue your current learning routine",
			"Gradually increase topic complexity",
		}
	}

	if len(laggingTopics) > 0 {
		strategies = append(strategies, "Dedicate extra time to: "+strings.Join(laggingTopics, ", "))
	}

	return strategies
}

// TrackRecoveryProgress computes pairwise success-rate improvements across
// the last 5 tests (oldest first) and reports recovery if at least one of the
// last two pairs improved.
func (s *RecoveryService) TrackRecoveryProgress(learnerID string) (*model.RecoveryProgress, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}

	tests := s.TestRepo.ListByLearner(learnerID)
	if len(tests) > 5 {
		tests = tests[len(tests)-5:]
	}

	if len(tests) < 3 {
		return &model.RecoveryProgress{
			InRecovery: false,
			Message:    "Not enough data to track recovery",
		}, nil
	}

	var improvements []bool
	for i := 1; i < len(tests); i++ {
		improvements = append(improvements, tests[i].SuccessRate() > tests[i-1].SuccessRate())
	}

	recent := improvements[len(improvements)-2:]
	inRecovery := recent[0] || recent[1]

	message := "Continue working on consistent improvement"
	if inRecovery {
		message = "Recovery pattern detected in recent sessions"
	}

	return &model.RecoveryProgress{
		InRecovery: inRecovery,
		Message:    message,
	}, nil
}
