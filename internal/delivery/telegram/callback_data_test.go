package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	encoded := quizCallback(quizMode, "word-to-meaning")
	assert.Equal(t, "quiz:mode:word-to-meaning", encoded)

	cd := decodeCallback(encoded)
	assert.Equal(t, actionQuiz, cd.Action)
	assert.Equal(t, []string{quizMode, "word-to-meaning"}, cd.Params)

	cd = decodeCallback("quiz")
	assert.Equal(t, actionQuiz, cd.Action)
	assert.Empty(t, cd.Params)
}
