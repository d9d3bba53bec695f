package service

import (
	"context"
	"math/rand"
	"strings"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
	"github.com/ndquang/vocab-trainer/internal/repository"
)

// VocabularyService exposes CRUD and search over the word list.
type VocabularyService struct {
	repository WordRepository
}

func NewVocabularyService(repository WordRepository) *VocabularyService {
	return &VocabularyService{repository: repository}
}

// List returns all words, filtered by a case-insensitive substring match
// over word, meaning, phonetic and topic when search is non-empty.
func (s *VocabularyService) List(ctx context.Context, search string) ([]entities.Word, error) {
	words, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(search) == "" {
		if words == nil {
			words = []entities.Word{}
		}
		return words, nil
	}

	filtered := make([]entities.Word, 0, len(words))
	for _, w := range words {
		if w.Matches(search) {
			filtered = append(filtered, w)
		}
	}

	return filtered, nil
}

// Create validates and stores a new word. Word and meaning are required;
// phonetic and topic may be empty.
func (s *VocabularyService) Create(ctx context.Context, w entities.Word) (entities.Word, error) {
	w = trimmed(w)
	if w.Word == "" || w.Meaning == "" {
		return entities.Word{}, ErrMissingFields
	}

	return s.repository.Insert(ctx, w)
}

// Update validates and replaces an existing word.
func (s *VocabularyService) Update(ctx context.Context, w entities.Word) (entities.Word, error) {
	w = trimmed(w)
	if w.Word == "" || w.Meaning == "" {
		return entities.Word{}, ErrMissingFields
	}

	return s.repository.Update(ctx, w)
}

// Delete removes a word by ID.
func (s *VocabularyService) Delete(ctx context.Context, id int) error {
	return s.repository.Delete(ctx, id)
}

// Random returns a uniformly chosen word, or ErrWordNotFound when the
// collection is empty.
func (s *VocabularyService) Random(ctx context.Context) (entities.Word, error) {
	words, err := s.repository.List(ctx)
	if err != nil {
		return entities.Word{}, err
	}
	if len(words) == 0 {
		return entities.Word{}, repository.ErrWordNotFound
	}

	return words[rand.Intn(len(words))], nil
}

func trimmed(w entities.Word) entities.Word {
	w.Word = strings.TrimSpace(w.Word)
	w.Meaning = strings.TrimSpace(w.Meaning)
	w.Phonetic = strings.TrimSpace(w.Phonetic)
	w.Topic = strings.TrimSpace(w.Topic)
	return w
}
