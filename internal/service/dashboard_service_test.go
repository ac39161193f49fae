package service

import (
	"testing"
	"time"

	"learn_track_backend/internal/model"
	"learn_track_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentDashboardEmptyHistory(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	dashboard, err := f.dashboard.GetStudentDashboard("s1")
	require.NoError(t, err)

	assert.Equal(t, "Ada", dashboard.Student.Name)
	assert.Equal(t, model.RiskOnTrack, dashboard.Analysis.RiskLevel)
	assert.Equal(t, "No recent tests", dashboard.TestAnalysis.Trend)
	assert.True(t, dashboard.CanTakeTest)
	assert.Empty(t, dashboard.RecentActivities)
	assert.Equal(t, f.topics.List(), dashboard.Topics)
}

func TestStudentDashboardRecentActivitiesCapAtFive(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")
	for i := 0; i < 7; i++ {
		f.logActivity("s1", "Science", 2, 2, 5, time.Duration(7-i)*time.Hour)
	}

	dashboard, err := f.dashboard.GetStudentDashboard("s1")
	require.NoError(t, err)

	assert.Len(t, dashboard.RecentActivities, 5)
}

func TestStudentDashboardRejectsTrainer(t *testing.T) {
	f := newFixture()
	f.addTrainer("t1", "Grace")

	_, err := f.dashboard.GetStudentDashboard("t1")
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}

func TestTrainerDashboardTallySummary(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")
	f.addStudent("s2", "Alan")
	f.addStudent("s3", "Edsger")
	f.addTrainer("t1", "Grace")

	// s1 healthy, s2 one signal, s3 three signals.
	f.logActivity("s1", "Science", 2, 2, 5, time.Hour)
	f.logActivity("s2", "Science", 3, 3, 5, time.Hour)
	f.logActivity("s3", "Science", 4, 0, 25, 3*time.Hour)
	f.logActivity("s3", "Science", 4, 0, 25, 2*time.Hour)

	dashboard, err := f.dashboard.GetTrainerDashboard()
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.Summary.Total)
	assert.Equal(t, 1, dashboard.Summary.OnTrack)
	assert.Equal(t, 1, dashboard.Summary.NeedsAttention)
	assert.Equal(t, 1, dashboard.Summary.SupportRecommended)

	// Trainers never show up as rows.
	require.Len(t, dashboard.Students, 3)
	assert.Equal(t, "s1", dashboard.Students[0].ID)
	assert.NotNil(t, dashboard.Students[0].LastActivity)
}

func TestTrainerDashboardWithNoStudents(t *testing.T) {
	f := newFixture()
	f.addTrainer("t1", "Grace")

	dashboard, err := f.dashboard.GetTrainerDashboard()
	require.NoError(t, err)

	assert.Empty(t, dashboard.Students)
	assert.Equal(t, 0, dashboard.Summary.Total)
}

func TestStudentDetailCombinesRecentSessions(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")
	f.logActivity("s1", "Science", 2, 2, 5, 4*time.Hour)
	f.logActivity("s1", "Science", 2, 2, 5, 3*time.Hour)
	f.logTest(t, "s1", "Science", 5, 4, 10, 2*time.Hour)
	f.logActivity("s1", "History", 2, 1, 5, time.Hour)

	detail, err := f.dashboard.GetStudentDetail("s1")
	require.NoError(t, err)

	require.Len(t, detail.RecentSessions, 3)
	assert.Equal(t, "activity", detail.RecentSessions[0].Type)
	assert.Equal(t, "History", detail.RecentSessions[0].Topic)
	assert.Equal(t, "test", detail.RecentSessions[1].Type)
	assert.Equal(t, "activity", detail.RecentSessions[2].Type)

	assert.Equal(t, 3, detail.TotalActivities)
	assert.Equal(t, 1, detail.TotalTests)
	assert.NotNil(t, detail.RecoveryProgress)
}

func TestStudentDetailRejectsTrainer(t *testing.T) {
	f := newFixture()
	f.addTrainer("t1", "Grace")

	_, err := f.dashboard.GetStudentDetail("t1")
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}

func TestStudentSummary(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	summary, err := f.dashboard.GetStudentSummary("s1")
	require.NoError(t, err)
	assert.False(t, summary.HasActivity)
	assert.Nil(t, summary.LastSessionDate)

	f.logActivity("s1", "Science", 2, 2, 5, time.Hour)

	summary, err = f.dashboard.GetStudentSummary("s1")
	require.NoError(t, err)
	assert.True(t, summary.HasActivity)
	require.NotNil(t, summary.LastSessionDate)
	assert.WithinDuration(t, time.Now().Add(-time.Hour), *summary.LastSessionDate, time.Minute)
}
