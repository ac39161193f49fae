package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicSeedAndOrder(t *testing.T) {
	repo := NewTopicRepository([]string{"Mathematics", "Science"})

	assert.Equal(t, []string{"Mathematics", "Science"}, repo.List())
	assert.True(t, repo.Exists("Mathematics"))
	assert.False(t, repo.Exists("History"))
}

func TestTopicAddTrimsAndDeduplicates(t *testing.T) {
	repo := NewTopicRepository(nil)

	assert.True(t, repo.Add("  Algebra  "))
	assert.True(t, repo.Add("Algebra"))

	assert.Equal(t, []string{"Algebra"}, repo.List())
}

func TestTopicAddRejectsBlank(t *testing.T) {
	repo := NewTopicRepository(nil)

	assert.False(t, repo.Add(""))
	assert.False(t, repo.Add("   "))
	assert.Empty(t, repo.List())
}

func TestTopicNamesAreCaseSensitive(t *testing.T) {
	repo := NewTopicRepository(nil)

	repo.Add("math")
	repo.Add("Math")

	assert.Equal(t, []string{"math", "Math"}, repo.List())
}

func TestTopicListReturnsCopy(t *testing.T) {
	repo := NewTopicRepository([]string{"Mathematics"})

	list := repo.List()
	list[0] = "changed"

	assert.Equal(t, []string{"Mathematics"}, repo.List())
}
