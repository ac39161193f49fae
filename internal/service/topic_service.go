package service

import (
	"learn_track_backend/internal/repository"
	"strings"
)

// TopicService fronts the topic registry.
type TopicService struct {
	TopicRepo *repository.TopicRepository
}

func NewTopicService(topicRepo *repository.TopicRepository) *TopicService {
	return &TopicService{TopicRepo: topicRepo}
}

func (s *TopicService) ListTopics() []string {
	return s.TopicRepo.List()
}

// AddTopic trims and registers the topic, returning the stored name.
func (s *TopicService) AddTopic(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if !s.TopicRepo.Add(name) {
		return "", false
	}
	return name, true
}
