package service

import (
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/repository"
	"learn_track_backend/internal/util"
	"sort"
	"time"
)

// DashboardService assembles the student and trainer views by composing the
// analysis services with raw store reads. It holds no state of its own.
type DashboardService struct {
	LearnerRepo  *repository.LearnerRepository
	ActivityRepo *repository.ActivityRepository
	TestRepo     *repository.DailyTestRepository
	TopicRepo    *repository.TopicRepository
	Failure      *FailureService
	DailyTest    *DailyTestService
	Recovery     *RecoveryService
}

func NewDashboardService(
	learnerRepo *repository.LearnerRepository,
	activityRepo *repository.ActivityRepository,
	testRepo *repository.DailyTestRepository,
	topicRepo *repository.TopicRepository,
	failure *FailureService,
	dailyTest *DailyTestService,
	recovery *RecoveryService,
) *DashboardService {
	return &DashboardService{
		LearnerRepo:  learnerRepo,
		ActivityRepo: activityRepo,
		TestRepo:     testRepo,
		TopicRepo:    topicRepo,
		Failure:      failure,
		DailyTest:    dailyTest,
		Recovery:     recovery,
	}
}

type LearnerBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StudentDashboard struct {
	Student          LearnerBrief        `json:"student"`
	Analysis         *model.Analysis     `json:"analysis"`
	TestAnalysis     *model.TestAnalysis `json:"testAnalysis"`
	RecoveryGuidance *model.Guidance     `json:"recoveryGuidance"`
	CanTakeTest      bool                `json:"canTakeTest"`
	RecentActivities []model.Activity    `json:"recentActivities"`
	Topics           []string            `json:"topics"`
}

// GetStudentDashboard builds the learner-facing view. Only learners with the
// student role have one.
func (s *DashboardService) GetStudentDashboard(learnerID string) (*StudentDashboard, error) {
	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}
	if learner.Role != model.Student {
		return nil, util.ErrLearnerNotFound
	}

	analysis, err := s.Failure.Analyze(learnerID)
	if err != nil {
		return nil, err
	}
	testAnalysis, err := s.DailyTest.GetTestAnalysis(learnerID)
	if err != nil {
		return nil, err
	}
	guidance, err := s.Recovery.GenerateGuidance(learnerID)
	if err != nil {
		return nil, err
	}
	canTake, err := s.DailyTest.CanTakeTest(learnerID)
	if err != nil {
		return nil, err
	}

	recent := s.ActivityRepo.ListRecent(learnerID, activityWindowDays)
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	return &StudentDashboard{
		Student:          LearnerBrief{ID: learner.ID, Name: learner.Name},
		Analysis:         analysis,
		TestAnalysis:     testAnalysis,
		RecoveryGuidance: guidance,
		CanTakeTest:      canTake,
		RecentActivities: recent,
		Topics:           s.TopicRepo.List(),
	}, nil
}

type TrainerStudentRow struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Status           model.RiskLevel `json:"status"`
	Insight          string          `json:"insight"`
	Trend            string          `json:"trend"`
	LastActivity     *time.Time      `json:"lastActivity"`
	NeedsAttention   bool            `json:"needsAttention"`
	RecoveryDetected bool            `json:"recoveryDetected"`
}

type TrainerSummary struct {
	Total              int `json:"total"`
	OnTrack            int `json:"onTrack"`
	NeedsAttention     int `json:"needsAttention"`
	SupportRecommended int `json:"supportRecommended"`
}

type TrainerDashboard struct {
	Students []TrainerStudentRow `json:"students"`
	Summary  TrainerSummary      `json:"summary"`
}

// GetTrainerDashboard analyzes every student and tallies the tier counts.
func (s *DashboardService) GetTrainerDashboard() (*TrainerDashboard, error) {
	students := s.LearnerRepo.ListByRole(model.Student)

	rows := make([]TrainerStudentRow, 0, len(students))
	summary := TrainerSummary{Total: len(students)}

	for _, student := range students {
		analysis, err := s.Failure.Analyze(student.ID)
		if err != nil {
			return nil, err
		}
		testAnalysis, err := s.DailyTest.GetTestAnalysis(student.ID)
		if err != nil {
			return nil, err
		}

		row := TrainerStudentRow{
			ID:               student.ID,
			Name:             student.Name,
			Status:           analysis.RiskLevel,
			Insight:          analysis.Insight,
			Trend:            testAnalysis.Trend,
			NeedsAttention:   analysis.NeedsAttention,
			RecoveryDetected: analysis.RecoveryDetected,
		}
		if recent := s.ActivityRepo.ListRecent(student.ID, 3); len(recent) > 0 {
			last := recent[len(recent)-1].Timestamp
			row.LastActivity = &last
		}
		rows = append(rows, row)

		switch analysis.RiskLevel {
		case model.RiskOnTrack:
			summary.OnTrack++
		case model.RiskNeedsAttention:
			summary.NeedsAttention++
		case model.RiskSupportRecommended:
			summary.SupportRecommended++
		}
	}

	return &TrainerDashboard{Students: rows, Summary: summary}, nil
}

// SessionRecord is one activity or test in a combined recency view.
type SessionRecord struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	Topic      string    `json:"topic"`
	Attempts   int       `json:"attempts"`
	Correct    int       `json:"correct"`
	TimeSpent  int       `json:"timeSpent"`
	Timestamp  time.Time `json:"timestamp"`
	Reflection string    `json:"reflection,omitempty"`
}

type StudentDetail struct {
	Student          LearnerBrief            `json:"student"`
	Analysis         *model.Analysis         `json:"analysis"`
	TestAnalysis     *model.TestAnalysis     `json:"testAnalysis"`
	RecoveryGuidance *model.Guidance         `json:"recoveryGuidance"`
	RecoveryProgress *model.RecoveryProgress `json:"recoveryProgress"`
	RecentSessions   []SessionRecord         `json:"recentSessions"`
	LaggingTopics    []string                `json:"laggingTopics"`
	TotalActivities  int                     `json:"totalActivities"`
	TotalTests       int                     `json:"totalTests"`
}

// GetStudentDetail is the trainer's drill-down on one student: full analysis
// plus the last 3 sessions across activities and tests combined.
func (s *DashboardService) GetStudentDetail(learnerID string) (*StudentDetail, error) {
	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}
	if learner.Role != model.Student {
		return nil, util.ErrLearnerNotFound
	}

	analysis, err := s.Failure.Analyze(learnerID)
	if err != nil {
		return nil, err
	}
	testAnalysis, err := s.DailyTest.GetTestAnalysis(learnerID)
	if err != nil {
		return nil, err
	}
	guidance, err := s.Recovery.GenerateGuidance(learnerID)
	if err != nil {
		return nil, err
	}
	progress, err := s.Recovery.TrackRecoveryProgress(learnerID)
	if err != nil {
		return nil, err
	}

	sessions := []SessionRecord{}
	for _, activity := range s.ActivityRepo.ListRecent(learnerID, activityWindowDays) {
		sessions = append(sessions, SessionRecord{
			Type:      "activity",
			ID:        activity.ID,
			Topic:     activity.Topic,
			Attempts:  activity.Attempts,
			Correct:   activity.Correct,
			TimeSpent: activity.TimeSpent,
			Timestamp: activity.Timestamp,
		})
	}
	for _, test := range s.TestRepo.ListSince(learnerID, activityWindowDays) {
		sessions = append(sessions, SessionRecord{
			Type:       "test",
			ID:         test.ID,
			Topic:      test.Topic,
			Attempts:   test.Attempts,
			Correct:    test.Correct,
			TimeSpent:  test.TimeSpent,
			Timestamp:  test.Timestamp,
			Reflection: test.Reflection,
		})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	if len(sessions) > 3 {
		sessions = sessions[:3]
	}

	return &StudentDetail{
		Student:          LearnerBrief{ID: learner.ID, Name: learner.Name},
		Analysis:         analysis,
		TestAnalysis:     testAnalysis,
		RecoveryGuidance: guidance,
		RecoveryProgress: progress,
		RecentSessions:   sessions,
		LaggingTopics:    analysis.LaggingTopics,
		TotalActivities:  s.ActivityRepo.CountByLearner(learnerID),
		TotalTests:       s.TestRepo.CountByLearner(learnerID),
	}, nil
}

type StudentSummary struct {
	StudentName      string          `json:"studentName"`
	HasActivity      bool            `json:"hasActivity"`
	Status           model.RiskLevel `json:"status"`
	Insight          string          `json:"insight"`
	LaggingTopics    []string        `json:"laggingTopics"`
	RecoveryDetected bool            `json:"recoveryDetected"`
	LastSessionDate  *time.Time      `json:"lastSessionDate"`
}

// GetStudentSummary is the compact per-student view without raw numbers.
func (s *DashboardService) GetStudentSummary(learnerID string) (*StudentSummary, error) {
	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		return nil, err
	}
	if learner.Role != model.Student {
		return nil, util.ErrLearnerNotFound
	}

	analysis, err := s.Failure.Analyze(learnerID)
	if err != nil {
		return nil, err
	}

	activities := s.ActivityRepo.ListByLearner(learnerID)
	tests := s.TestRepo.ListByLearner(learnerID)

	summary := &StudentSummary{
		StudentName:      learner.Name,
		HasActivity:      len(activities) > 0 || len(tests) > 0,
		Status:           analysis.RiskLevel,
		Insight:          analysis.Insight,
		LaggingTopics:    analysis.LaggingTopics,
		RecoveryDetected: analysis.RecoveryDetected,
	}

	var last time.Time
	for _, activity := range activities {
		if activity.Timestamp.After(last) {
			last = activity.Timestamp
		}
	}
	for _, test := range tests {
		if test.Timestamp.After(last) {
			last = test.Timestamp
		}
	}
	if !last.IsZero() {
		summary.LastSessionDate = &last
	}

	return summary, nil
}
