package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jankohoener/asknow/internal/config"
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/store"
	"github.com/jankohoener/asknow/internal/utils"
	"github.com/jankohoener/asknow/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passwordRe = regexp.MustCompile(`^.{3,20}$`)
	emailRe    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// authService implements AuthService over a UserRepository, with bcrypt
// password hashing and a JWT session token lifecycle.
type authService struct {
	userRepository store.UserRepository
	userStorage    store.UserStorage

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService with the token parameters
// from cfg. Writes go through the repository; session lookups go through
// the cache-first storage. The returned service is safe for concurrent
// use.
func NewAuthService(userRepository store.UserRepository, userStorage store.UserStorage, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		userStorage:    userStorage,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

func (a *authService) SignUp(ctx context.Context, input SignUpInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validateSignUp(input); len(fieldErrors) > 0 {
		log.Info().Str("username", input.Username).Msg("signup input failed validation")
		return models.User{}, fieldErrors
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
	})
	if errors.Is(err, store.ErrUsernameTaken) {
		log.Info().Str("username", input.Username).Msg("signup rejected, username taken")
		return models.User{}, ValidationErrors{"username": "This user exists already"}
	}
	if err != nil {
		log.Err(err).Str("username", input.Username).Msg("user creation failed")
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	return createdUser, nil
}

func (a *authService) Login(ctx context.Context, username string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidLogin
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", username).Msg("login rejected, unknown user")
		return models.User{}, ErrInvalidLogin
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("find user by username: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Info().Str("username", username).Msg("login rejected, wrong password")
		return models.User{}, ErrInvalidLogin
	}

	return foundUser, nil
}

func (a *authService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userStorage.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Int64("user_id", userID).Msg("session user no longer exists")
		return models.User{}, err
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session user lookup failed")
		return models.User{}, fmt.Errorf("resolve user %d: %w", userID, err)
	}

	return user, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature and the issuer claim. Any failure is
// normalised to ErrTokenIsExpiredOrInvalid so callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func validateSignUp(input SignUpInput) ValidationErrors {
	fieldErrors := ValidationErrors{}
	if !usernameRe.MatchString(input.Username) {
		fieldErrors["username"] = "Invalid username"
	}
	if !passwordRe.MatchString(input.Password) {
		fieldErrors["password"] = "Invalid password"
	}
	if input.Password != input.Verify {
		fieldErrors["verify"] = "Passwords do not match"
	}
	// Email stays optional.
	if input.Email != "" && !emailRe.MatchString(input.Email) {
		fieldErrors["email"] = "Invalid email"
	}
	return fieldErrors
}
