package repository

import (
	"testing"
	"time"

	"learn_track_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeActivity(learnerID, id string, age time.Duration) model.Activity {
	return model.Activity{
		ID:        id,
		LearnerID: learnerID,
		Topic:     "Science",
		Attempts:  3,
		Correct:   2,
		TimeSpent: 10,
		Timestamp: time.Now().Add(-age),
	}
}

func TestActivityAppendPreservesOrder(t *testing.T) {
	repo := NewActivityRepository()
	repo.Append(makeActivity("s1", "a1", 3*time.Hour))
	repo.Append(makeActivity("s1", "a2", 2*time.Hour))
	repo.Append(makeActivity("s1", "a3", time.Hour))

	activities := repo.ListByLearner("s1")

	require.Len(t, activities, 3)
	assert.Equal(t, "a1", activities[0].ID)
	assert.Equal(t, "a3", activities[2].ID)
}

func TestActivityListRecentWindow(t *testing.T) {
	repo := NewActivityRepository()
	repo.Append(makeActivity("s1", "old", 10*24*time.Hour))
	repo.Append(makeActivity("s1", "recent", 24*time.Hour))

	recent := repo.ListRecent("s1", 7)

	require.Len(t, recent, 1)
	assert.Equal(t, "recent", recent[0].ID)
}

func TestActivityListByLearnerReturnsCopy(t *testing.T) {
	repo := NewActivityRepository()
	repo.Append(makeActivity("s1", "a1", time.Hour))

	first := repo.ListByLearner("s1")
	first[0].Correct = 99

	second := repo.ListByLearner("s1")
	assert.Equal(t, 2, second[0].Correct)
}

func TestActivityUnknownLearnerIsEmpty(t *testing.T) {
	repo := NewActivityRepository()

	assert.Empty(t, repo.ListByLearner("ghost"))
	assert.Empty(t, repo.ListRecent("ghost", 7))
	assert.Equal(t, 0, repo.CountByLearner("ghost"))
}
