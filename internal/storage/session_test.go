package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

func TestSessionStorage(t *testing.T) {
	s := NewSessionStorage()

	assert.Nil(t, s.Get(1))

	session := entities.NewPracticeSession(1, entities.ModeWordToMeaning, []entities.Question{{}, {}})
	s.Store(1, session)
	assert.Same(t, session, s.Get(1))
	assert.Nil(t, s.Get(2))

	s.Delete(1)
	assert.Nil(t, s.Get(1))
}
