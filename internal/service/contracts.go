package service

import (
	"context"
	"errors"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

// WordRepository is the storage contract the services depend on.
type WordRepository interface {
	List(ctx context.Context) ([]entities.Word, error)
	Insert(ctx context.Context, w entities.Word) (entities.Word, error)
	Update(ctx context.Context, w entities.Word) (entities.Word, error)
	Delete(ctx context.Context, id int) error
	ReplaceTopic(ctx context.Context, oldName, newName string) (int, error)
	DeleteByTopic(ctx context.Context, name string) (int, error)
}

var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrTopicExists    = errors.New("topic already exists")
	ErrTopicNotFound  = errors.New("topic not found")
	ErrNotEnoughWords = errors.New("not enough words for a quiz")
	ErrNoWordsInTopic = errors.New("no words in the selected topic")
	ErrUnknownMode    = errors.New("unknown quiz mode")
)
