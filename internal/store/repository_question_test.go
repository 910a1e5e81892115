package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/models"
)

func newTestQuestionRepo(t *testing.T) (*questionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &questionRepository{
		db:     &DB{DB: db, dialect: "postgres", logger: l},
		logger: l,
	}
	return repo, mock, db
}

var questionColumns = []string{"question_id", "user_id", "question", "asked"}

func TestSaveQuestion_Success(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(questionColumns).
		AddRow(1, int64(7), "in which city was beethoven born", now)

	mock.ExpectQuery("INSERT INTO questions").
		WithArgs(int64(7), "in which city was beethoven born").
		WillReturnRows(rows)

	saved, err := repo.SaveQuestion(context.Background(), models.Question{
		UserID: 7,
		Text:   "in which city was beethoven born",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.QuestionID != 1 {
		t.Errorf("expected QuestionID=1, got %d", saved.QuestionID)
	}
	if saved.Asked.IsZero() {
		t.Error("expected server-assigned asked timestamp")
	}
}

func TestSaveQuestion_DBError(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO questions").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.SaveQuestion(context.Background(), models.Question{UserID: 7, Text: "q"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFindRecentByUser_OrderAndLimit(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	base := time.Now()
	rows := sqlmock.NewRows(questionColumns).
		AddRow(3, int64(7), "newest", base).
		AddRow(2, int64(7), "middle", base.Add(-time.Minute)).
		AddRow(1, int64(7), "oldest", base.Add(-2*time.Minute))

	mock.ExpectQuery("SELECT question_id, user_id, question, asked FROM questions").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	questions, err := repo.FindRecentByUser(context.Background(), 7, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if questions[0].Text != "newest" {
		t.Errorf("expected most recent question first, got %q", questions[0].Text)
	}
}

func TestFindRecentByUser_Empty(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT question_id, user_id, question, asked FROM questions").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	questions, err := repo.FindRecentByUser(context.Background(), 7, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
}

func TestFindRecentByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT question_id, user_id, question, asked FROM questions").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindRecentByUser(context.Background(), 7, 5)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
