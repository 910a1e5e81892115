package store

import (
	"github.com/jankohoener/asknow/internal/logger"
)

// Storages bundles every store-layer dependency the service layer needs.
type Storages struct {
	UserRepository  UserRepository
	UserStorage     UserStorage
	QuestionStorage QuestionStorage
}

// NewStorages wires the repositories and the shared in-process cache over
// the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	cache := NewMemCache()
	userRepository := NewUserRepository(db, logger)
	questionRepository := NewQuestionRepository(db, logger)

	return &Storages{
		UserRepository:  userRepository,
		UserStorage:     NewUserStorage(cache, userRepository, logger),
		QuestionStorage: NewQuestionStorage(cache, questionRepository, logger),
	}
}
