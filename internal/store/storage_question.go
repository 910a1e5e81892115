package store

import (
	"context"
	"fmt"

	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/models"
)

// questionStorage is the two-tier store for per-user question history.
// Reads check the in-process cache first and fall back to the repository;
// writes persist the new entry and refresh the cached top-N list so the
// cache always reflects the post-update state.
type questionStorage struct {
	cache      Cache
	repository QuestionRepository
	logger     *logger.Logger
}

// NewQuestionStorage constructs a cache-first [QuestionStorage] over the
// given repository.
func NewQuestionStorage(cache Cache, repository QuestionRepository, logger *logger.Logger) QuestionStorage {
	logger.Debug().Msg("creating question storage")
	return &questionStorage{
		cache:      cache,
		repository: repository,
		logger:     logger,
	}
}

// RecentQuestions returns at most limit question texts for the user, most
// recent first. A cache hit short-circuits; a miss loads from the
// repository and repopulates the cache.
func (s *questionStorage) RecentQuestions(ctx context.Context, userID int64, limit int) ([]string, error) {
	log := logger.FromContext(ctx)
	key := questionsCacheKey(userID)

	if cached, ok := s.cache.Get(key); ok {
		if questions, ok := cached.([]string); ok {
			log.Debug().Int64("user_id", userID).Msg("questions retrieved from cache")
			return trimQuestions(questions, limit), nil
		}
		s.cache.Delete(key)
	}

	loaded, err := s.loadFromRepository(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	log.Debug().Int64("user_id", userID).Msg("questions retrieved from database")
	s.cache.Set(key, loaded)

	return loaded, nil
}

// RecordQuestion persists the question, prepends it to the user's history
// and refreshes the cached top-limit list. Repeated identical questions
// are kept as distinct entries.
func (s *questionStorage) RecordQuestion(ctx context.Context, userID int64, question string, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	questions, err := s.RecentQuestions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	if _, err := s.repository.SaveQuestion(ctx, models.Question{UserID: userID, Text: question}); err != nil {
		return nil, err
	}
	log.Debug().Int64("user_id", userID).Str("question", question).Msg("new question added to list and to database")

	updated := trimQuestions(append([]string{question}, questions...), limit)
	s.cache.Set(questionsCacheKey(userID), updated)

	return updated, nil
}

func (s *questionStorage) loadFromRepository(ctx context.Context, userID int64, limit int) ([]string, error) {
	entries, err := s.repository.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	questions := make([]string, 0, len(entries))
	for _, entry := range entries {
		questions = append(questions, entry.Text)
	}

	return questions, nil
}

func trimQuestions(questions []string, limit int) []string {
	if len(questions) > limit {
		return questions[:limit]
	}
	return questions
}

func questionsCacheKey(userID int64) string {
	return fmt.Sprintf("questions-%d", userID)
}
