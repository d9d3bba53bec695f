package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ndquang/vocab-trainer/internal/repository"
	"github.com/ndquang/vocab-trainer/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondServiceError maps domain errors onto HTTP statuses: validation
// failures become 400, unknown entities become 404 and everything else is
// a logged 500 with a generic message.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, repository.ErrWordExists),
		errors.Is(err, service.ErrTopicExists),
		errors.Is(err, service.ErrNotEnoughWords),
		errors.Is(err, service.ErrNoWordsInTopic),
		errors.Is(err, service.ErrUnknownMode):
		respondError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, repository.ErrWordNotFound),
		errors.Is(err, service.ErrTopicNotFound):
		respondError(w, http.StatusNotFound, err.Error())

	default:
		h.logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads the request body into v and rejects malformed or
// unexpected payloads.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
