package service

import (
	"testing"

	"learn_track_backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestTopicServiceAdd(t *testing.T) {
	svc := NewTopicService(repository.NewTopicRepository(nil))

	name, ok := svc.AddTopic("  Linear Algebra ")
	assert.True(t, ok)
	assert.Equal(t, "Linear Algebra", name)
	assert.Equal(t, []string{"Linear Algebra"}, svc.ListTopics())

	_, ok = svc.AddTopic("   ")
	assert.False(t, ok)
}

func TestTopicServiceListsSeed(t *testing.T) {
	svc := NewTopicService(repository.NewTopicRepository(repository.DefaultTopics))

	assert.Equal(t, repository.DefaultTopics, svc.ListTopics())
}
