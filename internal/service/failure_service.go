package service

import (
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/repository"
	"learn_track_backend/pkg/monitoring"
	"time"
)

// activityWindowDays bounds how far back the failure detector reads practice
// sessions. The full test history is always read.
const activityWindowDays = 7

// FailureService scans a learner's recent activity and complete test history
// for failure patterns and classifies the trajectory into a risk tier.
type FailureService struct {
	LearnerRepo  *repository.LearnerRepository
	ActivityRepo *repository.ActivityRepository
	TestRepo     *repository.DailyTestRepository
}

func NewFailureService(
	learnerRepo *repository.LearnerRepository,
	activityRepo *repository.ActivityRepository,
	testRepo *repository.DailyTestRepository,
) *FailureService {
	return &FailureService{
		LearnerRepo:  learnerRepo,
		ActivityRepo: activityRepo,
		TestRepo:     testRepo,
	}
}

// insightRules is the priority list for insight selection: the first rule
// whose signal fired wins. The order is a contract, not an implementation
// detail, so it lives in one place instead of nested conditionals.
var insightRules = []struct {
	Signal  model.FailureSignal
	Message string
}{
	{model.SignalConceptual, "Consider breaking down complex topics into smaller steps."},
	{model.SignalCognitiveOverload, "Taking shorter, focused sessions might help your understanding."},
	{model.SignalConsistencyBreakdown, "Regular practice, even for short periods, can strengthen your learning."},
	{model.SignalDifficultyPlateau, "Trying a different approach to these topics could unlock new progress."},
}

// Analyze recomputes the learner's analysis from the current store contents.
// It never writes; calling it twice without intervening submissions yields
// identical output.
func (s *FailureService) Analyze(learnerID string) (*model.Analysis, error) {
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		return nil, err
	}

	activities := s.ActivityRepo.ListRecent(learnerID, activityWindowDays)
	tests := s.TestRepo.ListByLearner(learnerID)

	analysis := &model.Analysis{
		RiskLevel:     model.RiskOnTrack,
		Insight:       "Keep up the good work with your learning routine.",
		LaggingTopics: []string{},
	}

	if len(activities) == 0 && len(tests) == 0 {
		monitoring.AnalysisCounter.WithLabelValues(string(analysis.RiskLevel)).Inc()
		return analysis, nil
	}

	signals := detectFailureSignals(activities, tests)

	analysis.RiskLevel = riskLevelFor(signals)
	analysis.Insight = insightFor(signals)
	analysis.LaggingTopics = identifyLaggingTopics(activities, tests)
	analysis.RecoveryDetected = detectRecovery(activities, tests)
	analysis.NeedsAttention = analysis.RiskLevel != model.RiskOnTrack

	monitoring.AnalysisCounter.WithLabelValues(string(analysis.RiskLevel)).Inc()

	return analysis, nil
}

func detectFailureSignals(activities []model.Activity, tests []model.DailyTest) model.FailureSignals {
	signals := model.NewFailureSignals()

	for _, activity := range activities {
		// Repeated retries on one session point at a conceptual gap.
		if activity.Attempts >= 3 {
			signals[model.SignalConceptual]++
		}
		// Long session with poor yield.
		if activity.TimeSpent >= 20 && float64(activity.Correct) < float64(activity.Attempts)*0.5 {
			signals[model.SignalCognitiveOverload]++
		}
	}

	if len(activities) > 0 {
		last := activities[len(activities)-1]
		if time.Since(last.Timestamp) >= 2*24*time.Hour {
			signals[model.SignalConsistencyBreakdown]++
		}
	}

	// Plateau: the last 4 tests show no pairwise improvement in correct count.
	if len(tests) >= 4 {
		recent := tests[len(tests)-4:]
		improved := false
		for i := 1; i < len(recent); i++ {
			if recent[i].Correct > recent[i-1].Correct {
				improved = true
				break
			}
		}
		if !improved {
			signals[model.SignalDifficultyPlateau]++
		}
	}

	return signals
}

// riskLevelFor maps the signal sum onto the three tiers.
func riskLevelFor(signals model.FailureSignals) model.RiskLevel {
	total := signals.Total()
	switch {
	case total == 0:
		return model.RiskOnTrack
	case total <= 2:
		return model.RiskNeedsAttention
	default:
		return model.RiskSupportRecommended
	}
}

func insightFor(signals model.FailureSignals) string {
	if signals.Total() == 0 {
		return "Your learning pattern shows consistent progress."
	}

	for _, rule := range insightRules {
		if signals[rule.Signal] > 0 {
			return rule.Message
		}
	}

	// Signals fired but none of the ranked ones, e.g. only reserved slots.
	return "Your learning journey is progressing well with room for growth."
}

type topicPerformance struct {
	attempts  int
	correct   int
	timeSpent int
	sessions  int
}

// identifyLaggingTopics aggregates activities then tests per topic label
// (case-sensitive) and flags topics below the success-rate threshold or above
// the time-per-attempt threshold. Result order is first appearance across the
// combined scan.
func identifyLaggingTopics(activities []model.Activity, tests []model.DailyTest) []string {
	performance := make(map[string]*topicPerformance)
	var order []string

	record := func(topic string, attempts, correct, timeSpent int) {
		perf, ok := performance[topic]
		if !ok {
			perf = &topicPerformance{}
			performance[topic] = perf
			order = append(order, topic)
		}
		perf.attempts += attempts
		perf.correct += correct
		perf.timeSpent += timeSpent
		perf.sessions++
	}

	for _, activity := range activities {
		record(activity.Topic, activity.Attempts, activity.Correct, activity.TimeSpent)
	}
	for _, test := range tests {
		record(test.Topic, test.Attempts, test.Correct, test.TimeSpent)
	}

	lagging := []string{}
	for _, topic := range order {
		perf := performance[topic]
		successRate := float64(perf.correct) / float64(perf.attempts)
		avgTimePerAttempt := float64(perf.timeSpent) / float64(perf.attempts)

		if successRate < 0.6 || avgTimePerAttempt > 5 {
			lagging = append(lagging, topic)
		}
	}
	return lagging
}

// detectRecovery looks for a short-term improvement: either the most recent
// of the last 3 activities beats its predecessor (more correct or less time),
// or the most recent of the last 2 tests has a higher correct count.
func detectRecovery(activities []model.Activity, tests []model.DailyTest) bool {
	recentActivities := activities
	if len(recentActivities) > 3 {
		recentActivities = recentActivities[len(recentActivities)-3:]
	}
	recentTests := tests
	if len(recentTests) > 2 {
		recentTests = recentTests[len(recentTests)-2:]
	}

	if len(recentActivities) < 2 && len(recentTests) < 2 {
		return false
	}

	if len(recentActivities) >= 2 {
		recent := recentActivities[len(recentActivities)-1]
		previous := recentActivities[len(recentActivities)-2]
		if recent.Correct > previous.Correct || recent.TimeSpent < previous.TimeSpent {
			return true
		}
	}

	if len(recentTests) >= 2 {
		recent := recentTests[len(recentTests)-1]
		previous := recentTests[len(recentTests)-2]
		if recent.Correct > previous.Correct {
			return true
		}
	}

	return false
}
