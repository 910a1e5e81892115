package http

import (
	"net/http"

	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/utils"
	"github.com/jankohoener/asknow/models"
)

// demo serves the HTML demo page. Anonymous visitors get a single
// answer for their question; logged-in users additionally get answers
// for their recent question history, with the new question recorded.
func (h *Handler) demo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	question := r.URL.Query().Get("q")
	userID, loggedIn := utils.GetUserIDFromContext(ctx)

	if !loggedIn && question == "" {
		log.Info().Msg("anonymous user without question, showing plain demo page")
		h.render(w, r, "demo.html", demoPage{})
		return
	}

	if !loggedIn {
		log.Info().Str("question", question).Msg("anonymous user asked question, loading answer")
		answer := h.services.AnswerService.Answer(ctx, question)

		page := answerPage{Question: question}
		if answer.Failed() {
			page.ErrCode = answer.ErrCode
			page.Message = answer.Message
		} else {
			page.AnswersList = []models.Answer{answer}
		}
		h.render(w, r, "answer.html", page)
		return
	}

	var questions []string
	var err error
	if question != "" {
		questions, err = h.services.HistoryService.Record(ctx, userID, question)
	} else {
		questions, err = h.services.HistoryService.Recent(ctx, userID)
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("loading question history failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Answers are fetched for the whole recent history; a failure only
	// surfaces on the page when it concerns the question just asked.
	page := answerPage{LoggedIn: true, Question: question}
	for _, q := range questions {
		answer := h.services.AnswerService.Answer(ctx, q)
		if !answer.Failed() {
			page.AnswersList = append(page.AnswersList, answer)
			continue
		}
		if q == question {
			page.ErrCode = answer.ErrCode
			page.Message = answer.Message
		}
	}
	h.render(w, r, "answer.html", page)
}

// answerJSON resolves a single question and writes the answer record as
// JSON. Failures are part of the answer shape, so the status is always
// 200.
func (h *Handler) answerJSON(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("q")
	answer := h.services.AnswerService.Answer(r.Context(), question)
	utils.WriteJSON(w, answer, http.StatusOK)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.renderer.Render(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("template rendering failed")
	}
}
