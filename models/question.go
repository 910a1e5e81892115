package models

import "time"

// Question is a single history entry: a question asked by an
// authenticated user. Entries are append-only; they are never updated
// or deleted, and only the most recent few are ever surfaced.
type Question struct {
	// QuestionID is the internal unique identifier of the entry.
	QuestionID int64 `json:"-"`

	// UserID references the user who asked the question.
	UserID int64 `json:"-"`

	// Text is the question exactly as the user typed it.
	Text string `json:"question"`

	// Asked is the timestamp when the question was submitted.
	Asked time.Time `json:"asked"`
}

// TableName returns the name of the database table
// associated with the Question model.
func (q Question) TableName() string {
	return "questions"
}
