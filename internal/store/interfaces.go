package store

import (
	"context"

	"github.com/jankohoener/asknow/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields. Returns ErrUsernameTaken when the username is already in use.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its unique username.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks an account up by its primary key.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// QuestionRepository is the persistence contract for question history
// entries. Entries are append-only.
type QuestionRepository interface {
	// SaveQuestion appends a history entry for the given user.
	SaveQuestion(ctx context.Context, question models.Question) (models.Question, error)

	// FindRecentByUser returns at most limit questions for the user,
	// most recently asked first.
	FindRecentByUser(ctx context.Context, userID int64, limit int) ([]models.Question, error)
}

// Cache is a trivial in-process key-value memoization layer with the same
// lookup contract as an external memcache: a miss is reported via the ok
// flag, never via an error.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
}

// UserStorage is the two-tier read path for user records: cache hit
// short-circuits, miss falls through to the repository and repopulates
// the cache.
type UserStorage interface {
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// QuestionStorage is the two-tier contract for per-user question history.
type QuestionStorage interface {
	// RecentQuestions returns at most limit question texts for the user,
	// most recent first, cache-first.
	RecentQuestions(ctx context.Context, userID int64, limit int) ([]string, error)

	// RecordQuestion persists the question, prepends it to the user's
	// history, and refreshes the cached top-limit list.
	RecordQuestion(ctx context.Context, userID int64, question string, limit int) ([]string, error)
}
