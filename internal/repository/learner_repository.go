package repository

import (
	"learn_track_backend/internal/model"
	"learn_track_backend/internal/util"
	"sync"
)

// LearnerRepository keeps all known learners in memory. Registration happens
// implicitly at login, so Save is an upsert.
type LearnerRepository struct {
	mu       sync.RWMutex
	learners map[string]model.Learner
	order    []string
}

func NewLearnerRepository() *LearnerRepository {
	return &LearnerRepository{
		learners: make(map[string]model.Learner),
	}
}

func (r *LearnerRepository) Save(learner model.Learner) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.learners[learner.ID]; !exists {
		r.order = append(r.order, learner.ID)
	}
	r.learners[learner.ID] = learner
}

func (r *LearnerRepository) FindByID(id string) (*model.Learner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	learner, ok := r.learners[id]
	if !ok {
		return nil, util.ErrLearnerNotFound
	}
	return &learner, nil
}

// ListByRole returns learners in registration order.
func (r *LearnerRepository) ListByRole(role model.LearnerRole) []model.Learner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []model.Learner{}
	for _, id := range r.order {
		if learner := r.learners[id]; learner.Role == role {
			result = append(result, learner)
		}
	}
	return result
}

func (r *LearnerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.learners)
}
