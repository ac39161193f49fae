package repository

import (
	"strings"
	"sync"
)

// TopicRepository is the free-text topic registry. Topics have no identity
// beyond exact string equality; submitting an unknown topic registers it.
type TopicRepository struct {
	mu     sync.RWMutex
	topics map[string]struct{}
	order  []string
}

func NewTopicRepository(seed []string) *TopicRepository {
	r := &TopicRepository{
		topics: make(map[string]struct{}),
	}
	for _, topic := range seed {
		r.add(topic)
	}
	return r
}

func (r *TopicRepository) add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, exists := r.topics[name]; !exists {
		r.topics[name] = struct{}{}
		r.order = append(r.order, name)
	}
	return true
}

func (r *TopicRepository) Add(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.add(name)
}

func (r *TopicRepository) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

func (r *TopicRepository) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.topics[name]
	return ok
}

// DefaultTopics seeds the registry when no topic list is configured.
var DefaultTopics = []string{
	"Mathematics",
	"Science",
	"History",
	"Literature",
	"Programming",
	"Physics",
	"Chemistry",
	"Biology",
}
