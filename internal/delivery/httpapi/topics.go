package httpapi

import "net/http"

type topicRequest struct {
	Name    string `json:"name,omitempty"`
	OldName string `json:"oldName,omitempty"`
	NewName string `json:"newName,omitempty"`
}

func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicService.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, topics)
}

// validateTopic only checks the name: topics come into existence when a
// word references them.
func (h *Handler) validateTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.topicService.Validate(r.Context(), req.Name); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

func (h *Handler) renameTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	renamed, err := h.topicService.Rename(r.Context(), req.OldName, req.NewName)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"renamed": renamed})
}

func (h *Handler) deleteTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deleted, err := h.topicService.Delete(r.Context(), req.Name)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
