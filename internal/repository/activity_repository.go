package repository

import (
	"learn_track_backend/internal/model"
	"sync"
	"time"
)

// ActivityRepository holds each learner's practice sessions as an append-only
// sequence in submission order.
type ActivityRepository struct {
	mu        sync.RWMutex
	byLearner map[string][]model.Activity
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		byLearner: make(map[string][]model.Activity),
	}
}

func (r *ActivityRepository) Append(activity model.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byLearner[activity.LearnerID] = append(r.byLearner[activity.LearnerID], activity)
}

func (r *ActivityRepository) ListByLearner(learnerID string) []model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := r.byLearner[learnerID]
	result := make([]model.Activity, len(activities))
	copy(result, activities)
	return result
}

// ListRecent returns activities with a timestamp strictly newer than
// now minus the given number of days, preserving submission order.
func (r *ActivityRepository) ListRecent(learnerID string, days int) []model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().AddDate(0, 0, -days)
	result := []model.Activity{}
	for _, activity := range r.byLearner[learnerID] {
		if activity.Timestamp.After(cutoff) {
			result = append(result, activity)
		}
	}
	return result
}

func (r *ActivityRepository) CountByLearner(learnerID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byLearner[learnerID])
}
