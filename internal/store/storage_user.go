package store

import (
	"context"
	"fmt"

	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/models"
)

// userStorage is the two-tier read path for user records: an in-process
// cache in front of the [UserRepository]. Authenticated requests resolve
// the session's user on every hit, so the cache saves one SELECT per
// request after the first.
type userStorage struct {
	cache      Cache
	repository UserRepository
	logger     *logger.Logger
}

// NewUserStorage constructs a cache-first [UserStorage] over the given
// repository.
func NewUserStorage(cache Cache, repository UserRepository, logger *logger.Logger) UserStorage {
	logger.Debug().Msg("creating user storage")
	return &userStorage{
		cache:      cache,
		repository: repository,
		logger:     logger,
	}
}

// GetUserByID returns the user with the given ID, checking the cache before
// falling back to the repository and repopulating the cache on a miss.
func (s *userStorage) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)
	key := userCacheKey(userID)

	if cached, ok := s.cache.Get(key); ok {
		if user, ok := cached.(models.User); ok {
			log.Debug().Int64("user_id", userID).Msg("user retrieved from cache")
			return user, nil
		}
		// unexpected cached type, drop it and fall through to the repository
		s.cache.Delete(key)
	}

	user, err := s.repository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	log.Debug().Int64("user_id", userID).Msg("user retrieved from database")
	s.cache.Set(key, user)

	return user, nil
}

func userCacheKey(userID int64) string {
	return fmt.Sprintf("user-%d", userID)
}
