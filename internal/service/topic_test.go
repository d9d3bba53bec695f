package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
	"github.com/ndquang/vocab-trainer/internal/repository"
)

func newTopicFixture(t *testing.T) (*TopicService, *repository.WordRepository) {
	t.Helper()

	repo := repository.NewWordRepository(filepath.Join(t.TempDir(), "vocabulary.json"))
	for _, w := range []entities.Word{
		{Word: "ねこ", Meaning: "cat", Topic: "Animals"},
		{Word: "いぬ", Meaning: "dog", Topic: "Animals"},
		{Word: "りんご", Meaning: "apple", Topic: "Food"},
		{Word: "こんにちは", Meaning: "hello"},
	} {
		_, err := repo.Insert(context.Background(), w)
		require.NoError(t, err)
	}

	return NewTopicService(repo), repo
}

func TestTopic_ListCountsAndSkipsEmpty(t *testing.T) {
	s, _ := newTopicFixture(t)

	topics, err := s.List(context.Background())
	require.NoError(t, err)

	// Untopiced words contribute no topic; result is sorted by name.
	assert.Equal(t, []entities.TopicSummary{
		{Name: "Animals", Count: 2},
		{Name: "Food", Count: 1},
	}, topics)
}

func TestTopic_Validate(t *testing.T) {
	s, _ := newTopicFixture(t)
	ctx := context.Background()

	assert.NoError(t, s.Validate(ctx, "Travel"))
	assert.ErrorIs(t, s.Validate(ctx, ""), ErrMissingFields)
	assert.ErrorIs(t, s.Validate(ctx, "Animals"), ErrTopicExists)
}

func TestTopic_Rename(t *testing.T) {
	s, repo := newTopicFixture(t)
	ctx := context.Background()

	renamed, err := s.Rename(ctx, "Animals", "Fauna")
	require.NoError(t, err)
	assert.Equal(t, 2, renamed)

	words, err := repo.List(ctx)
	require.NoError(t, err)
	for _, w := range words {
		assert.NotEqual(t, "Animals", w.Topic)
		if w.Word == "りんご" {
			assert.Equal(t, "Food", w.Topic)
		}
	}

	_, err = s.Rename(ctx, "Animals", "Beasts")
	assert.ErrorIs(t, err, ErrTopicNotFound)

	_, err = s.Rename(ctx, "Fauna", "Food")
	assert.ErrorIs(t, err, ErrTopicExists)

	_, err = s.Rename(ctx, "Fauna", " ")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestTopic_Delete(t *testing.T) {
	s, repo := newTopicFixture(t)
	ctx := context.Background()

	deleted, err := s.Delete(ctx, "Animals")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	words, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, words, 2)

	_, err = s.Delete(ctx, "Animals")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}
