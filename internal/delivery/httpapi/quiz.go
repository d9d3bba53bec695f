package httpapi

import "net/http"

type checkAnswerRequest struct {
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	QuestionType  string `json:"questionType"`
}

type checkAnswerResponse struct {
	IsCorrect bool `json:"isCorrect"`
}

func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	question, err := h.quizService.Generate(r.Context(), q.Get("mode"), q.Get("topic"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, question)
}

func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	var req checkAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok := h.answerChecker.Check(req.UserAnswer, req.CorrectAnswer, req.QuestionType)

	respondJSON(w, http.StatusOK, checkAnswerResponse{IsCorrect: ok})
}
