package service

import (
	"context"
	"fmt"

	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/store"
)

// historyLimit caps how many recent questions are kept per user.
const historyLimit = 5

type historyService struct {
	questionStorage store.QuestionStorage
	logger          *logger.Logger
}

// NewHistoryService wires a HistoryService over the two-tier question
// storage.
func NewHistoryService(questionStorage store.QuestionStorage, logger *logger.Logger) HistoryService {
	return &historyService{questionStorage: questionStorage, logger: logger}
}

func (h *historyService) Recent(ctx context.Context, userID int64) ([]string, error) {
	questions, err := h.questionStorage.RecentQuestions(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("recent questions for user %d: %w", userID, err)
	}
	return questions, nil
}

func (h *historyService) Record(ctx context.Context, userID int64, question string) ([]string, error) {
	questions, err := h.questionStorage.RecordQuestion(ctx, userID, question, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("record question for user %d: %w", userID, err)
	}
	return questions, nil
}
