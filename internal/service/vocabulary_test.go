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

func newVocabularyService(t *testing.T) *VocabularyService {
	t.Helper()
	repo := repository.NewWordRepository(filepath.Join(t.TempDir(), "vocabulary.json"))
	return NewVocabularyService(repo)
}

func TestVocabulary_CreateValidation(t *testing.T) {
	s := newVocabularyService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, entities.Word{Word: "ねこ"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Create(ctx, entities.Word{Meaning: "cat"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Create(ctx, entities.Word{Word: "  ", Meaning: "cat"})
	assert.ErrorIs(t, err, ErrMissingFields)

	created, err := s.Create(ctx, entities.Word{Word: " ねこ ", Meaning: "cat"})
	require.NoError(t, err)
	assert.Equal(t, "ねこ", created.Word, "fields are stored trimmed")
	assert.Equal(t, 1, created.ID)
}

func TestVocabulary_CreateDuplicate(t *testing.T) {
	s := newVocabularyService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, entities.Word{Word: "Neko", Meaning: "cat"})
	require.NoError(t, err)

	_, err = s.Create(ctx, entities.Word{Word: "neko", Meaning: "feline"})
	assert.ErrorIs(t, err, repository.ErrWordExists)
}

func TestVocabulary_ListSearch(t *testing.T) {
	s := newVocabularyService(t)
	ctx := context.Background()

	for _, w := range []entities.Word{
		{Word: "ねこ", Meaning: "cat", Phonetic: "neko", Topic: "animals"},
		{Word: "いぬ", Meaning: "dog", Phonetic: "inu", Topic: "animals"},
		{Word: "りんご", Meaning: "apple", Phonetic: "ringo", Topic: "food"},
	} {
		_, err := s.Create(ctx, w)
		require.NoError(t, err)
	}

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Substring match is case-insensitive and spans every text field.
	byMeaning, err := s.List(ctx, "CAT")
	require.NoError(t, err)
	require.Len(t, byMeaning, 1)
	assert.Equal(t, "ねこ", byMeaning[0].Word)

	byTopic, err := s.List(ctx, "food")
	require.NoError(t, err)
	require.Len(t, byTopic, 1)
	assert.Equal(t, "りんご", byTopic[0].Word)

	byPhonetic, err := s.List(ctx, "ringo")
	require.NoError(t, err)
	assert.Len(t, byPhonetic, 1)

	none, err := s.List(ctx, "zebra")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVocabulary_Random(t *testing.T) {
	s := newVocabularyService(t)
	ctx := context.Background()

	_, err := s.Random(ctx)
	assert.ErrorIs(t, err, repository.ErrWordNotFound)

	created, err := s.Create(ctx, entities.Word{Word: "ねこ", Meaning: "cat"})
	require.NoError(t, err)

	w, err := s.Random(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, w)
}
