package service

import (
	"testing"

	"learn_track_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddActivityHappyPath(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	activity, err := f.activity.AddActivity("s1", ActivitySubmission{
		Topic:     "Mathematics",
		Attempts:  3,
		Correct:   2,
		TimeSpent: 15,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, "s1", activity.LearnerID)
	assert.False(t, activity.Timestamp.IsZero())
	assert.Equal(t, 1, f.activities.CountByLearner("s1"))
}

func TestAddActivityRegistersNewTopic(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	_, err := f.activity.AddActivity("s1", ActivitySubmission{Topic: "Origami", Attempts: 2, Correct: 1, TimeSpent: 5})
	require.NoError(t, err)

	assert.True(t, f.topics.Exists("Origami"))
}

func TestAddActivityValidation(t *testing.T) {
	cases := []struct {
		name string
		sub  ActivitySubmission
	}{
		{"missing topic", ActivitySubmission{Attempts: 3, Correct: 1, TimeSpent: 5}},
		{"zero attempts", ActivitySubmission{Topic: "Science", Attempts: 0, TimeSpent: 5}},
		{"negative correct", ActivitySubmission{Topic: "Science", Attempts: 3, Correct: -1, TimeSpent: 5}},
		{"correct exceeds attempts", ActivitySubmission{Topic: "Science", Attempts: 2, Correct: 3, TimeSpent: 5}},
		{"negative time", ActivitySubmission{Topic: "Science", Attempts: 3, Correct: 2, TimeSpent: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.addStudent("s1", "Ada")

			_, err := f.activity.AddActivity("s1", tc.sub)
			assert.ErrorIs(t, err, util.ErrValidation)
			assert.Equal(t, 0, f.activities.CountByLearner("s1"))
		})
	}
}

func TestAddActivityZeroTimeSpentIsAllowed(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	_, err := f.activity.AddActivity("s1", ActivitySubmission{Topic: "Science", Attempts: 1, Correct: 1, TimeSpent: 0})
	assert.NoError(t, err)
}

func TestAddActivityUnknownLearner(t *testing.T) {
	f := newFixture()

	_, err := f.activity.AddActivity("ghost", ActivitySubmission{Topic: "Science", Attempts: 1, Correct: 1, TimeSpent: 5})
	assert.ErrorIs(t, err, util.ErrLearnerNotFound)
}

func TestGetActivitiesInSubmissionOrder(t *testing.T) {
	f := newFixture()
	f.addStudent("s1", "Ada")

	first, err := f.activity.AddActivity("s1", ActivitySubmission{Topic: "Science", Attempts: 2, Correct: 1, TimeSpent: 5})
	require.NoError(t, err)
	second, err := f.activity.AddActivity("s1", ActivitySubmission{Topic: "History", Attempts: 2, Correct: 2, TimeSpent: 5})
	require.NoError(t, err)

	activities, err := f.activity.GetActivities("s1")
	require.NoError(t, err)

	require.Len(t, activities, 2)
	assert.Equal(t, first.ID, activities[0].ID)
	assert.Equal(t, second.ID, activities[1].ID)
}
