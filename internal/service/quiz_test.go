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

func newSeededQuizService(t *testing.T, words ...entities.Word) (*QuizService, map[int]entities.Word) {
	t.Helper()

	repo := repository.NewWordRepository(filepath.Join(t.TempDir(), "vocabulary.json"))
	byID := make(map[int]entities.Word, len(words))
	for _, w := range words {
		inserted, err := repo.Insert(context.Background(), w)
		require.NoError(t, err)
		byID[inserted.ID] = inserted
	}

	return NewQuizService(repo), byID
}

func animalAndFoodWords() []entities.Word {
	return []entities.Word{
		{Word: "ねこ", Meaning: "cat", Phonetic: "neko", Topic: "animals"},
		{Word: "いぬ", Meaning: "dog", Phonetic: "inu", Topic: "animals"},
		{Word: "りんご", Meaning: "apple", Phonetic: "ringo", Topic: "food"},
		{Word: "みず", Meaning: "water", Phonetic: "mizu", Topic: "food"},
		{Word: "とり", Meaning: "bird", Phonetic: "tori", Topic: "animals"},
	}
}

func TestGenerate_RejectsUnknownMode(t *testing.T) {
	s, _ := newSeededQuizService(t, animalAndFoodWords()...)

	_, err := s.Generate(context.Background(), "meaning-to-phonetic", "")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestGenerate_RequiresFourWords(t *testing.T) {
	s, _ := newSeededQuizService(t,
		entities.Word{Word: "ねこ", Meaning: "cat", Phonetic: "neko", Topic: "animals"},
		entities.Word{Word: "いぬ", Meaning: "dog", Phonetic: "inu", Topic: "animals"},
		entities.Word{Word: "とり", Meaning: "bird", Phonetic: "tori", Topic: "animals"},
	)

	_, err := s.Generate(context.Background(), entities.ModeWordToMeaning, "")
	assert.ErrorIs(t, err, ErrNotEnoughWords)

	// The minimum applies to the whole collection, topic filter or not.
	_, err = s.Generate(context.Background(), entities.ModeWordToMeaning, "animals")
	assert.ErrorIs(t, err, ErrNotEnoughWords)
}

func TestGenerate_UnknownTopic(t *testing.T) {
	s, _ := newSeededQuizService(t, animalAndFoodWords()...)

	_, err := s.Generate(context.Background(), entities.ModeWordToMeaning, "plants")
	assert.ErrorIs(t, err, ErrNoWordsInTopic)
}

func TestGenerate_PhoneticToMeaning(t *testing.T) {
	s, byID := newSeededQuizService(t, animalAndFoodWords()...)

	q, err := s.Generate(context.Background(), entities.ModePhoneticToMeaning, "")
	require.NoError(t, err)

	target, ok := byID[q.WordID]
	require.True(t, ok, "question must reference a stored word")

	assert.Equal(t, entities.ModePhoneticToMeaning, q.Mode)
	assert.Equal(t, target.Word, q.Word)
	assert.Equal(t, target.Meaning, q.CorrectAnswer)
	assert.Contains(t, q.Prompt, target.Phonetic)

	require.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, q.CorrectAnswer)
	assert.Equal(t, q.CorrectAnswer, q.Options[q.CorrectIndex])

	// Distractors must be distinct from the answer and each other.
	seen := map[string]int{}
	for _, opt := range q.Options {
		seen[opt]++
	}
	for opt, n := range seen {
		assert.Equal(t, 1, n, "option %q appears %d times", opt, n)
	}
}

func TestGenerate_TopicFilterOnlyConstrainsTarget(t *testing.T) {
	s, byID := newSeededQuizService(t, animalAndFoodWords()...)

	// The target always comes from the topic; distractors may not.
	for i := 0; i < 50; i++ {
		q, err := s.Generate(context.Background(), entities.ModeWordToMeaning, "food")
		require.NoError(t, err)

		target := byID[q.WordID]
		assert.Equal(t, "food", target.Topic)
		require.Len(t, q.Options, 4)
	}
}

func TestGenerate_TextModeHasNoOptions(t *testing.T) {
	s, byID := newSeededQuizService(t, animalAndFoodWords()...)

	q, err := s.Generate(context.Background(), entities.ModeTypeMeaning, "")
	require.NoError(t, err)

	target := byID[q.WordID]
	assert.Empty(t, q.Options)
	assert.Equal(t, target.Meaning, q.CorrectAnswer)
	assert.Contains(t, q.Prompt, target.Word)
}

func TestGenerate_SkipsTargetsWithEmptyAnswerField(t *testing.T) {
	// Phonetic is optional: a word without one must never become the
	// target of a word-to-phonetic question.
	s, byID := newSeededQuizService(t,
		entities.Word{Word: "a", Meaning: "ma", Phonetic: "pa", Topic: "x"},
		entities.Word{Word: "b", Meaning: "mb", Phonetic: "", Topic: "x"},
		entities.Word{Word: "c", Meaning: "mc", Phonetic: "pc", Topic: "x"},
		entities.Word{Word: "d", Meaning: "md", Phonetic: "pd", Topic: "y"},
		entities.Word{Word: "e", Meaning: "me", Phonetic: "pe", Topic: "y"},
	)

	for i := 0; i < 50; i++ {
		q, err := s.Generate(context.Background(), entities.ModeWordToPhonetic, "x")
		require.NoError(t, err)

		target := byID[q.WordID]
		assert.NotEqual(t, "b", target.Word)
		assert.NotEmpty(t, q.CorrectAnswer)
		for _, opt := range q.Options {
			assert.NotEmpty(t, opt)
		}
	}
}

func TestGenerate_AllAnswerFieldsEmpty(t *testing.T) {
	s, _ := newSeededQuizService(t,
		entities.Word{Word: "a", Meaning: "ma", Topic: "z"},
		entities.Word{Word: "b", Meaning: "mb", Topic: "z"},
		entities.Word{Word: "c", Meaning: "mc", Phonetic: "pc"},
		entities.Word{Word: "d", Meaning: "md", Phonetic: "pd"},
	)

	// No word in the topic has a phonetic to ask for.
	_, err := s.Generate(context.Background(), entities.ModeWordToPhonetic, "z")
	assert.ErrorIs(t, err, ErrNotEnoughWords)

	// An unknown topic is still reported as such.
	_, err = s.Generate(context.Background(), entities.ModeWordToPhonetic, "plants")
	assert.ErrorIs(t, err, ErrNoWordsInTopic)
}

func TestGenerateSet_DistinctTargets(t *testing.T) {
	s, _ := newSeededQuizService(t, animalAndFoodWords()...)

	questions, err := s.GenerateSet(context.Background(), entities.ModeWordToMeaning, "", 5)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	seen := map[int]bool{}
	for _, q := range questions {
		assert.False(t, seen[q.WordID], "word %d asked twice", q.WordID)
		seen[q.WordID] = true
	}

	// Asking for more questions than distinct words yields a shorter,
	// still duplicate-free set.
	questions, err = s.GenerateSet(context.Background(), entities.ModeWordToMeaning, "food", 5)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(questions), 2)
	assert.NotEmpty(t, questions)
}

func TestGenerate_NotEnoughDistinctValues(t *testing.T) {
	// Four words sharing one meaning cannot fill three distinct
	// distractor slots.
	s, _ := newSeededQuizService(t,
		entities.Word{Word: "a", Meaning: "same"},
		entities.Word{Word: "b", Meaning: "same"},
		entities.Word{Word: "c", Meaning: "same"},
		entities.Word{Word: "d", Meaning: "same"},
	)

	_, err := s.Generate(context.Background(), entities.ModeWordToMeaning, "")
	assert.ErrorIs(t, err, ErrNotEnoughWords)
}
