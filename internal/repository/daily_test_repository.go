package repository

import (
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/util"
	"sort"
	"sync"
	"time"
)

// DailyTestRepository holds each learner's daily tests in submission order and
// enforces the one-test-per-calendar-day rule at insert time.
type DailyTestRepository struct {
	mu        sync.RWMutex
	byLearner map[string][]model.DailyTest
}

func NewDailyTestRepository() *DailyTestRepository {
	return &DailyTestRepository{
		byLearner: make(map[string][]model.DailyTest),
	}
}

// Append inserts the test unless one already exists for the same learner and
// calendar date. The date check and the insert happen under one write lock,
// so two concurrent submissions for the same day cannot both commit.
func (r *DailyTestRepository) Append(test model.DailyTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byLearner[test.LearnerID] {
		if existing.Date == test.Date {
			return util.ErrTestAlreadyTaken
		}
	}
	r.byLearner[test.LearnerID] = append(r.byLearner[test.LearnerID], test)
	return nil
}

func (r *DailyTestRepository) FindByDate(learnerID, date string) (*model.DailyTest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, test := range r.byLearner[learnerID] {
		if test.Date == date {
			found := test
			return &found, true
		}
	}
	return nil, false
}

// ListByLearner returns the full test history in submission order, which for
// daily tests is also chronological order.
func (r *DailyTestRepository) ListByLearner(learnerID string) []model.DailyTest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tests := r.byLearner[learnerID]
	result := make([]model.DailyTest, len(tests))
	copy(result, tests)
	return result
}

// ListSince returns tests with a timestamp strictly newer than now minus the
// given number of days, sorted most recent first. The descending order is part
// of the contract, not an accident of storage.
func (r *DailyTestRepository) ListSince(learnerID string, days int) []model.DailyTest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().AddDate(0, 0, -days)
	result := []model.DailyTest{}
	for _, test := range r.byLearner[learnerID] {
		if test.Timestamp.After(cutoff) {
			result = append(result, test)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result
}

func (r *DailyTestRepository) CountByLearner(learnerID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byLearner[learnerID])
}
