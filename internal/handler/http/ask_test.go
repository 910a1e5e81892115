package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jankohoener/asknow/internal/service"
	"github.com/jankohoener/asknow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_AnonymousWithoutQuestion(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: anonymousAuth()})

	req := httptest.NewRequest(http.MethodGet, "/asknow/demo", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "sign up")
}

func TestDemo_AnonymousWithQuestion(t *testing.T) {
	answers := &mockAnswerService{
		answerFn: func(_ context.Context, question string) models.Answer {
			assert.Equal(t, "where is bonn", question)
			return models.Answer{
				Question:    question,
				Titles:      []string{"Bonn"},
				Information: []models.Summary{{Title: "Bonn", Abstract: "A city on the Rhine."}},
				Count:       1,
			}
		},
	}
	h := newTestHandler(t, &service.Services{
		AnswerService: answers,
		AuthService:   anonymousAuth(),
	})

	req := httptest.NewRequest(http.MethodGet, "/asknow/demo?q=where+is+bonn", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A city on the Rhine.")
}

func TestDemo_AnonymousWithFailingQuestion(t *testing.T) {
	answers := &mockAnswerService{
		answerFn: func(_ context.Context, question string) models.Answer {
			return models.Answer{
				Question: question,
				ErrCode:  models.ErrCodeNoAnswer,
				Message:  "Could not find an answer to your question.",
			}
		},
	}
	h := newTestHandler(t, &service.Services{
		AnswerService: answers,
		AuthService:   anonymousAuth(),
	})

	req := httptest.NewRequest(http.MethodGet, "/asknow/demo?q=gibberish", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not find an answer to your question.")
}

func TestDemo_LoggedInRecordsQuestionAndAnswersHistory(t *testing.T) {
	history := &mockHistoryService{
		recordFn: func(_ context.Context, userID int64, question string) ([]string, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "where is bonn", question)
			return []string{"where is bonn", "who is beethoven"}, nil
		},
	}
	answers := &mockAnswerService{
		answerFn: func(_ context.Context, question string) models.Answer {
			return models.Answer{
				Question:    question,
				Information: []models.Summary{{Title: "Answer to " + question}},
				Count:       1,
			}
		},
	}
	h := newTestHandler(t, &service.Services{
		AnswerService:  answers,
		AuthService:    sessionAuth(42),
		HistoryService: history,
	})

	req := httptest.NewRequest(http.MethodGet, "/asknow/demo?q=where+is+bonn", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.session.token"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Answer to where is bonn")
	assert.Contains(t, rec.Body.String(), "Answer to who is beethoven")
	assert.Contains(t, rec.Body.String(), "Log out")
}

func TestDemo_LoggedInWithoutQuestionShowsRecentHistory(t *testing.T) {
	history := &mockHistoryService{
		recentFn: func(_ context.Context, userID int64) ([]string, error) {
			assert.Equal(t, int64(42), userID)
			return []string{"who is beethoven"}, nil
		},
	}
	answers := &mockAnswerService{
		answerFn: func(_ context.Context, question string) models.Answer {
			return models.Answer{Question: question, Information: []models.Summary{{Title: "Ludwig van Beethoven"}}, Count: 1}
		},
	}
	h := newTestHandler(t, &service.Services{
		AnswerService:  answers,
		AuthService:    sessionAuth(42),
		HistoryService: history,
	})

	req := httptest.NewRequest(http.MethodGet, "/asknow/demo", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.session.token"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ludwig van Beethoven")
}

func TestDemo_LoggedInFailureOnlySurfacesForAskedQuestion(t *testing.T) {
	history := &mockHistoryService{
		recordFn: func(_ context.Context, _ int64, _ string) ([]string, error) {
			return []string{"gibberish", "who is beethoven"}, nil
		},
	}
	answers := &mockAnswerService{
		answerFn: func(_ context.Context, question string) models.Answer {
			if question == "gibberish" {
				return models.Answer{Question: question, ErrCode: models.ErrCodeNoAnswer, Message: "Could not find an answer to your question."}
			}
			return models.Answer{Question: question, Information: []models.Summary{{Title: "Ludwig van Beethoven"}}, Count: 1}
		},
	}
	h := newTestHandler(t, &service.Services{
		AnswerService:  answers,
		AuthService:    sessionAuth(42),
		HistoryService: history,
	})

	req := httptest.NewRequest(http.MethodGet, "/asknow/demo?q=gibberish", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid.session.token"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not find an answer to your question.")
	assert.Contains(t, rec.Body.String(), "Ludwig van Beethoven")
}

func TestAnswerJSON(t *testing.T) {
	answers := &mockAnswerService{
		answerFn: func(_ context.Context, question string) models.Answer {
			return models.Answer{
				Question:    question,
				Titles:      []string{"Bonn"},
				Information: []models.Summary{{Title: "Bonn", WPLink: "https://en.wikipedia.org/wiki/Bonn"}},
				Count:       1,
				Answered:    true,
			}
		},
	}
	h := newTestHandler(t, &service.Services{
		AnswerService: answers,
		AuthService:   anonymousAuth(),
	})

	req := httptest.NewRequest(http.MethodGet, "/asknow/json?q=in+which+city+was+beethoven+born", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var answer models.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.Equal(t, []string{"Bonn"}, answer.Titles)
	assert.True(t, answer.Answered)
	assert.Equal(t, 1, answer.Count)
}

func TestAnswerJSON_MissingQuestion(t *testing.T) {
	answers := &mockAnswerService{
		answerFn: func(_ context.Context, question string) models.Answer {
			assert.Empty(t, question)
			return models.Answer{ErrCode: models.ErrCodeMissingParam, Message: "Application needs a q parameter, none given."}
		},
	}
	h := newTestHandler(t, &service.Services{
		AnswerService: answers,
		AuthService:   anonymousAuth(),
	})

	req := httptest.NewRequest(http.MethodGet, "/asknow/json", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	// Resolution failures still answer 200 with the code in the body.
	require.Equal(t, http.StatusOK, rec.Code)

	var answer models.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.Equal(t, models.ErrCodeMissingParam, answer.ErrCode)
}
