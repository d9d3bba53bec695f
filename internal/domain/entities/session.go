package entities

import "time"

// PracticeSession tracks one quiz run in the Telegram surface: a fixed
// list of questions, the current position and the score so far.
type PracticeSession struct {
	ChatID         int64
	Mode           string
	Questions      []Question
	CurrentIndex   int
	CorrectAnswers int
	StartedAt      time.Time
}

// NewPracticeSession creates a session positioned at the first question.
func NewPracticeSession(chatID int64, mode string, questions []Question) *PracticeSession {
	return &PracticeSession{
		ChatID:    chatID,
		Mode:      mode,
		Questions: questions,
		StartedAt: time.Now(),
	}
}

// Current returns the question the session is waiting an answer for, or
// nil when the session is finished.
func (s *PracticeSession) Current() *Question {
	if s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// Advance records the result of the current question and moves on.
func (s *PracticeSession) Advance(correct bool) {
	if correct {
		s.CorrectAnswers++
	}
	s.CurrentIndex++
}

// Finished reports whether every question has been answered.
func (s *PracticeSession) Finished() bool {
	return s.CurrentIndex >= len(s.Questions)
}
