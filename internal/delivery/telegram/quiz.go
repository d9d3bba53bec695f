package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
	"github.com/ndquang/vocab-trainer/internal/repository"
	"github.com/ndquang/vocab-trainer/internal/service"
)

// quizMenuHandler shows the mode selection keyboard.
func (h *Handler) quizMenuHandler() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		msg := newHTMLMessage(chatID, msgChooseMode)
		msg.ReplyMarkup = modeKeyboard()
		h.send(msg)
		return nil
	}
}

// quizCallbackHandler dispatches quiz callbacks: mode selection, answers
// and stop.
func (h *Handler) quizCallbackHandler(cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(cd.Params) == 0 {
			return fmt.Errorf("empty quiz callback: %s", cd.Raw)
		}

		switch cd.Params[0] {
		case quizMode:
			if len(cd.Params) < 2 {
				return fmt.Errorf("quiz mode callback without mode: %s", cd.Raw)
			}
			return h.startSession(ctx, chatID, cd.Params[1])

		case quizAnswer:
			if len(cd.Params) < 2 {
				return fmt.Errorf("quiz answer callback without index: %s", cd.Raw)
			}
			index, err := strconv.Atoi(cd.Params[1])
			if err != nil {
				return fmt.Errorf("quiz answer callback with bad index: %s", cd.Raw)
			}
			return h.answerQuestion(chatID, index)

		case quizStop:
			h.sessions.Delete(chatID)
			h.send(newHTMLMessage(chatID, msgQuizStopped))
			return nil

		default:
			return fmt.Errorf("unknown quiz callback: %s", cd.Raw)
		}
	}
}

// startSession generates a set of questions with distinct target words
// and sends the first one.
func (h *Handler) startSession(ctx context.Context, chatID int64, mode string) error {
	questions, err := h.quizService.GenerateSet(ctx, mode, "", h.questionsPerSession)
	if err != nil {
		if errors.Is(err, service.ErrNotEnoughWords) {
			h.send(newHTMLMessage(chatID, msgNotEnoughWords))
			return nil
		}
		return err
	}

	session := entities.NewPracticeSession(chatID, mode, questions)
	h.sessions.Store(chatID, session)

	h.sendQuestion(chatID, session)
	return nil
}

// answerQuestion grades the selected option, sends feedback and either
// the next question or the final summary.
func (h *Handler) answerQuestion(chatID int64, index int) error {
	session := h.sessions.Get(chatID)
	if session == nil || session.Current() == nil {
		h.send(newHTMLMessage(chatID, msgNoActiveSession))
		return nil
	}

	q := session.Current()
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("selected index %d out of range", index)
	}

	correct := index == q.CorrectIndex
	h.send(newHTMLMessage(chatID, formatFeedback(correct, q.CorrectAnswer)))

	session.Advance(correct)

	if session.Finished() {
		h.send(newHTMLMessage(chatID, formatSummary(session)))
		h.sessions.Delete(chatID)
		return nil
	}

	h.sendQuestion(chatID, session)
	return nil
}

func (h *Handler) sendQuestion(chatID int64, session *entities.PracticeSession) {
	q := session.Current()
	msg := newHTMLMessage(chatID, formatQuestion(session.CurrentIndex+1, len(session.Questions), *q))
	msg.ReplyMarkup = optionsKeyboard(*q)
	h.send(msg)
}

// randomHandler sends one random word.
func (h *Handler) randomHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		w, err := h.vocabularyService.Random(ctx)
		if errors.Is(err, repository.ErrWordNotFound) {
			h.send(newHTMLMessage(chatID, msgNoWords))
			return nil
		}
		if err != nil {
			return err
		}

		h.send(newHTMLMessage(chatID, formatWord(w)))
		return nil
	}
}

// topicsHandler sends the topic list with counts.
func (h *Handler) topicsHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topics, err := h.topicService.List(ctx)
		if err != nil {
			return err
		}
		if len(topics) == 0 {
			h.send(newHTMLMessage(chatID, msgNoTopics))
			return nil
		}

		h.send(newHTMLMessage(chatID, formatTopics(topics)))
		return nil
	}
}
