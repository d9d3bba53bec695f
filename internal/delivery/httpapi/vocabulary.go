package httpapi

import (
	"net/http"
	"strconv"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

type wordRequest struct {
	ID       int    `json:"id,omitempty"`
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Phonetic string `json:"phonetic"`
	Topic    string `json:"topic"`
}

func (h *Handler) listVocabulary(w http.ResponseWriter, r *http.Request) {
	words, err := h.vocabularyService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, words)
}

func (h *Handler) createWord(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.vocabularyService.Create(r.Context(), entities.Word{
		Word:     req.Word,
		Meaning:  req.Meaning,
		Phonetic: req.Phonetic,
		Topic:    req.Topic,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateWord(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.vocabularyService.Update(r.Context(), entities.Word{
		ID:       req.ID,
		Word:     req.Word,
		Meaning:  req.Meaning,
		Phonetic: req.Phonetic,
		Topic:    req.Topic,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.vocabularyService.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"deleted": id})
}
