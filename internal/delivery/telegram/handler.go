// Package telegram provides an optional practice surface: the same quiz
// generator driven through a Telegram bot.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
	"github.com/ndquang/vocab-trainer/internal/storage"
)

type VocabularyService interface {
	Random(ctx context.Context) (entities.Word, error)
}

type TopicService interface {
	List(ctx context.Context) ([]entities.TopicSummary, error)
}

type QuizService interface {
	GenerateSet(ctx context.Context, mode, topic string, count int) ([]entities.Question, error)
}

type Handler struct {
	bot               *tgbotapi.BotAPI
	logger            *zap.Logger
	vocabularyService VocabularyService
	topicService      TopicService
	quizService       QuizService
	sessions          *storage.SessionStorage

	questionsPerSession int
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	vocabularyService VocabularyService,
	topicService TopicService,
	quizService QuizService,
	sessions *storage.SessionStorage,
	questionsPerSession int,
) *Handler {
	return &Handler{
		bot:                 bot,
		logger:              logger,
		vocabularyService:   vocabularyService,
		topicService:        topicService,
		quizService:         quizService,
		sessions:            sessions,
		questionsPerSession: questionsPerSession,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case "start", "help":
		h.send(newHTMLMessage(chatID, msgWelcome))

	case "quiz":
		_ = h.withErrorHandling(h.quizMenuHandler())(ctx, chatID)

	case "random":
		_ = h.withErrorHandling(h.randomHandler())(ctx, chatID)

	case "topics":
		_ = h.withErrorHandling(h.topicsHandler())(ctx, chatID)

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Acknowledge so the client stops showing a spinner.
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		h.logger.Error("failed to answer callback", zap.Error(err))
	}

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	cd := decodeCallback(cb.Data)
	if cd.Action != actionQuiz {
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
		return
	}

	_ = h.withErrorHandling(h.quizCallbackHandler(cd))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newHTMLMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
