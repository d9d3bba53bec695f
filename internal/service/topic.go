package service

import (
	"context"
	"sort"
	"strings"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

// TopicService manages the derived topic entity: topics only exist as the
// distinct set of topic labels across stored words.
type TopicService struct {
	repository WordRepository
}

func NewTopicService(repository WordRepository) *TopicService {
	return &TopicService{repository: repository}
}

// List returns every distinct non-empty topic with its word count,
// sorted by name.
func (s *TopicService) List(ctx context.Context) ([]entities.TopicSummary, error) {
	words, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, w := range words {
		if w.Topic != "" {
			counts[w.Topic]++
		}
	}

	topics := make([]entities.TopicSummary, 0, len(counts))
	for name, count := range counts {
		topics = append(topics, entities.TopicSummary{Name: name, Count: count})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })

	return topics, nil
}

// Validate checks a prospective topic name. Topics are created lazily
// when a word references them, so this only rejects empty and taken
// names.
func (s *TopicService) Validate(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingFields
	}

	exists, err := s.exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return ErrTopicExists
	}

	return nil
}

// Rename rewrites every word labelled oldName to newName and returns the
// number of rewritten words.
func (s *TopicService) Rename(ctx context.Context, oldName, newName string) (int, error) {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return 0, ErrMissingFields
	}

	taken, err := s.exists(ctx, newName)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrTopicExists
	}

	changed, err := s.repository.ReplaceTopic(ctx, oldName, newName)
	if err != nil {
		return 0, err
	}
	if changed == 0 {
		return 0, ErrTopicNotFound
	}

	return changed, nil
}

// Delete removes every word labelled with the topic and returns the
// number of removed words.
func (s *TopicService) Delete(ctx context.Context, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrMissingFields
	}

	deleted, err := s.repository.DeleteByTopic(ctx, name)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrTopicNotFound
	}

	return deleted, nil
}

func (s *TopicService) exists(ctx context.Context, name string) (bool, error) {
	words, err := s.repository.List(ctx)
	if err != nil {
		return false, err
	}

	for _, w := range words {
		if w.Topic == name {
			return true, nil
		}
	}

	return false, nil
}
