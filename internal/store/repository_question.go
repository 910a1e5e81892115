package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/models"
)

// questionRepository is the SQL-backed implementation of
// [QuestionRepository] over the "questions" table.
type questionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuestionRepository constructs a [QuestionRepository] backed by the
// provided database connection and logger.
func NewQuestionRepository(db *DB, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveQuestion appends a history entry and returns it with server-assigned
// fields (QuestionID, Asked).
func (r *questionRepository) SaveQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveQuestion, question.UserID, question.Text)

	if err := row.Scan(&question.QuestionID, &question.UserID, &question.Text, &question.Asked); err != nil {
		log.Err(err).Str("func", "*questionRepository.SaveQuestion").Msg("error: scanning error")
		return models.Question{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return question, nil
}

// FindRecentByUser returns at most limit questions asked by the user,
// ordered by asked timestamp descending (most recent first).
//
// The SELECT is built with squirrel; question_id breaks ties between
// entries that share an asked timestamp.
func (r *questionRepository) FindRecentByUser(ctx context.Context, userID int64, limit int) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("question_id", "user_id", "question", "asked").
		From(models.Question{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("asked DESC", "question_id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.FindRecentByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.FindRecentByUser").Msg("error querying questions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.QuestionID, &q.UserID, &q.Text, &q.Asked); err != nil {
			log.Err(err).Str("func", "*questionRepository.FindRecentByUser").Msg("error: scanning error")
			return nil, err
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return questions, nil
}
