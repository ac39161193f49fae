package service

import (
	"testing"
	"time"

	"learn_track_backend/internal/model"
	"learn_track_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTestHappyPath(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	test, err := f.daily.SubmitTest("s1", DailyTestSubmission{
		Topic:      "Mathematics",
		Attempts:   5,
		Correct:    4,
		TimeSpent:  12,
		Reflection: "Felt solid on fractions.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, test.ID)
	assert.Equal(t, "s1", test.LearnerID)
	assert.Equal(t, time.Now().Format(model.DateLayout), test.Date)
	assert.Equal(t, "Felt solid on fractions.", test.Reflection)
	assert.Equal(t, 1, f.tests.CountByLearner("s1"))
}

func TestSubmitTestOncePerDay(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	_, err := f.daily.SubmitTest("s1", DailyTestSubmission{Topic: "Science", Attempts: 5, Correct: 3, TimeSpent: 10})
	require.NoError(t, err)

	_, err = f.daily.SubmitTest("s1", DailyTestSubmission{Topic: "History", Attempts: 4, Correct: 4, TimeSpent: 8})
	assert.ErrorIs(t, err, util.ErrTestAlreadyTaken)
	// The rejected submission leaves no trace.
	assert.Equal(t, 1, f.tests.CountByLearner("s1"))
}

func TestRejectedSubmissionDoesNotRegisterTopic(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	_, err := f.daily.SubmitTest("s1", DailyTestSubmission{Topic: "Science", Attempts: 5, Correct: 3, TimeSpent: 10})
	require.NoError(t, err)

	_, err = f.daily.SubmitTest("s1", DailyTestSubmission{Topic: "Marine Navigation", Attempts: 4, Correct: 4, TimeSpent: 8})
	assert.ErrorIs(t, err, util.ErrTestAlreadyTaken)
	assert.False(t, f.topics.Exists("Marine Navigation"))

	_, err = f.daily.SubmitTest("s1", DailyTestSubmission{Topic: "", Attempts: 4, Correct: 4, TimeSpent: 8})
	assert.ErrorIs(t, err, util.ErrValidation)
	assert.Equal(t, 1, f.tests.CountByLearner("s1"))
}

func TestCanTakeTestFlipsAfterSubmission(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	ok, err := f.daily.CanTakeTest("s1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.daily.SubmitTest("s1", DailyTestSubmission{Topic: "Science", Attempts: 5, Correct: 3, TimeSpent: 10})
	require.NoError(t, err)

	ok, err = f.daily.CanTakeTest("s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitTestValidation(t *testing.T) {
	cases := []struct {
		name string
		sub  DailyTestSubmission
	}{
		{"missing topic", DailyTestSubmission{Attempts: 3, Correct: 1, TimeSpent: 5}},
		{"zero attempts", DailyTestSubmission{Topic: "Science", Attempts: 0, Correct: 0, TimeSpent: 5}},
		{"negative correct", DailyTestSubmission{Topic: "Science", Attempts: 3, Correct: -1, TimeSpent: 5}},
		{"correct exceeds attempts", DailyTestSubmission{Topic: "Science", Attempts: 3, Correct: 4, TimeSpent: 5}},
		{"negative time", DailyTestSubmission{Topic: "Science", Attempts: 3, Correct: 2, TimeSpent: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.addStudent("s1", "Ada")

			_, err := f.daily.SubmitTest("s1", tc.sub)
			assert.ErrorIs(t, err, util.ErrValidation)
			assert.Equal(t, 0, f.tests.CountByLearner("s1"))
		})
	}
}

func TestSubmitTestUnknownLearner(t *testing.T) {
	f := newFixture()

	_, err := f.daily.SubmitTest("ghost", DailyTestSubmission{Topic: "Science", Attempts: 3, Correct: 2, TimeSpent: 5})
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}

func TestSubmitTestRegistersTopic(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	_, err := f.daily.SubmitTest("s1", DailyTestSubmission{Topic: "Celtic Harp", Attempts: 3, Correct: 2, TimeSpent: 5})
	require.NoError(t, err)

	assert.True(t, f.topics.Exists("Celtic Harp"))
}

func TestGetTestHistoryMostRecentFirst(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")
	f.logTest(t, "s1", "Science", 5, 2, 10, 3*day)
	f.logTest(t, "s1", "Science", 5, 3, 10, 2*day)
	f.logTest(t, "s1", "Science", 5, 4, 10, day)

	history, err := f.daily.GetTestHistory("s1", 30)
	require.NoError(t, err)

	require.Len(t, history, 3)
	assert.Equal(t, 4, history[0].Correct)
	assert.Equal(t, 3, history[1].Correct)
	assert.Equal(t, 2, history[2].Correct)
}

func TestGetTestHistoryWindow(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")
	f.logTest(t, "s1", "Science", 5, 2, 10, 10*day)
	f.logTest(t, "s1", "Science", 5, 3, 10, day)

	history, err := f.daily.GetTestHistory("s1", 7)
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, 3, history[0].Correct)
}

func TestGetTestAnalysisTrends(t *testing.T) {
	t.Run("no recent tests", func(t *testing.T) {
		f := newFixture()
		f.addStudent("s1", "Ada")

		analysis, err := f.daily.GetTestAnalysis("s1")
		require.NoError(t, err)
		assert.Equal(t, "No recent tests", analysis.Trend)
		assert.Equal(t, "Take your first daily test to start tracking progress.", analysis.Message)
	})

	t.Run("old tests fall outside the window", func(t *testing.T) {
		f := newFixture()
		f.addStudent("s1", "Ada")
		f.logTest(t, "s1", "Science", 5, 4, 10, 10*day)

		analysis, err := f.daily.GetTestAnalysis("s1")
		require.NoError(t, err)
		assert.Equal(t, "No recent tests", analysis.Trend)
	})

	t.Run("getting started", func(t *testing.T) {
		f := newFixture()
		f.addStudent("s1", "Ada")
		f.logTest(t, "s1", "Science", 5, 4, 10, day)

		analysis, err := f.daily.GetTestAnalysis("s1")
		require.NoError(t, err)
		assert.Equal(t, "Getting started", analysis.Trend)
		assert.Equal(t, "Great job taking your first test! Keep it up tomorrow.", analysis.Message)
	})

	t.Run("improving", func(t *testing.T) {
		f := newFixture()
		f.addStudent("s1", "Ada")
		f.logTest(t, "s1", "Science", 5, 2, 10, 2*day)
		f.logTest(t, "s1", "Science", 5, 4, 10, day)

		analysis, err := f.daily.GetTestAnalysis("s1")
		require.NoError(t, err)
		assert.Equal(t, "Improving", analysis.Trend)
		assert.Equal(t, "You adjusted well after your last session.", analysis.Message)
	})

	t.Run("declining", func(t *testing.T) {
		f := newFixture()
		f.addStudent("s1", "Ada")
		f.logTest(t, "s1", "Science", 5, 4, 10, 2*day)
		f.logTest(t, "s1", "Science", 5, 2, 10, day)

		analysis, err := f.daily.GetTestAnalysis("s1")
		require.NoError(t, err)
		assert.Equal(t, "Declining", analysis.Trend)
		assert.Equal(t, "If this continues, a short reset could help.", analysis.Message)
	})

	t.Run("stable on equal rates", func(t *testing.T) {
		f := newFixture()
		f.addStudent("s1", "Ada")
		// Different raw counts, identical success rates.
		f.logTest(t, "s1", "Science", 4, 2, 10, 2*day)
		f.logTest(t, "s1", "Science", 8, 4, 10, day)

		analysis, err := f.daily.GetTestAnalysis("s1")
		require.NoError(t, err)
		assert.Equal(t, "Stable", analysis.Trend)
		assert.Equal(t, "Your performance is consistent across sessions.", analysis.Message)
	})
}

func TestGetTestAnalysisIsReadOnly(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")
	f.logTest(t, "s1", "Science", 5, 2, 10, 2*day)
	f.logTest(t, "s1", "Science", 5, 4, 10, day)

	first, err := f.daily.GetTestAnalysis("s1")
	require.NoError(t, err)
	second, err := f.daily.GetTestAnalysis("s1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, f.tests.CountByLearner("s1"))
}
