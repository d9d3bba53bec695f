// Package httpapi exposes the vocabulary trainer as a JSON HTTP API.
package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

type VocabularyService interface {
	List(ctx context.Context, search string) ([]entities.Word, error)
	Create(ctx context.Context, w entities.Word) (entities.Word, error)
	Update(ctx context.Context, w entities.Word) (entities.Word, error)
	Delete(ctx context.Context, id int) error
}

type TopicService interface {
	List(ctx context.Context) ([]entities.TopicSummary, error)
	Validate(ctx context.Context, name string) error
	Rename(ctx context.Context, oldName, newName string) (int, error)
	Delete(ctx context.Context, name string) (int, error)
}

type QuizService interface {
	Generate(ctx context.Context, mode, topic string) (*entities.Question, error)
}

type AnswerChecker interface {
	Check(userAnswer, correctAnswer, mode string) bool
}

type Handler struct {
	logger            *zap.Logger
	vocabularyService VocabularyService
	topicService      TopicService
	quizService       QuizService
	answerChecker     AnswerChecker
}

func NewHandler(
	logger *zap.Logger,
	vocabularyService VocabularyService,
	topicService TopicService,
	quizService QuizService,
	answerChecker AnswerChecker,
) *Handler {
	return &Handler{
		logger:            logger,
		vocabularyService: vocabularyService,
		topicService:      topicService,
		quizService:       quizService,
		answerChecker:     answerChecker,
	}
}

// Routes builds the request multiplexer with logging applied to every
// endpoint.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /vocabulary", h.listVocabulary)
	mux.HandleFunc("POST /vocabulary", h.createWord)
	mux.HandleFunc("PUT /vocabulary", h.updateWord)
	mux.HandleFunc("DELETE /vocabulary", h.deleteWord)

	mux.HandleFunc("GET /topics", h.listTopics)
	mux.HandleFunc("POST /topics", h.validateTopic)
	mux.HandleFunc("PUT /topics", h.renameTopic)
	mux.HandleFunc("DELETE /topics", h.deleteTopic)

	mux.HandleFunc("GET /quiz", h.generateQuiz)
	mux.HandleFunc("POST /quiz", h.checkAnswer)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return h.withLogging(mux)
}
