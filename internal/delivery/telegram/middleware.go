package telegram

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling degrades a failed step to a generic chat message so
// a broken quiz turn never strands the user without a reply. The log
// records whether a practice session was running, since most failures
// happen mid-quiz.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		h.logger.Error("telegram handler failed",
			zap.Int64("chat_id", chatID),
			zap.Bool("session_active", h.sessions.Get(chatID) != nil),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return nil
	}
}
