package service

import (
	"context"

	"github.com/jankohoener/asknow/models"
)

// AnswerService resolves a natural-language question into encyclopedia
// summaries.
type AnswerService interface {
	// Answer never returns an error: resolution failures are reported
	// through the ErrCode and Message fields of the result.
	Answer(ctx context.Context, question string) models.Answer
}

// AuthService covers account creation, credential checks and the session
// token lifecycle.
type AuthService interface {
	// SignUp validates the input, hashes the password and persists the
	// account. Invalid input comes back as ValidationErrors; a taken
	// username is reported the same way under the "username" key.
	SignUp(ctx context.Context, input SignUpInput) (models.User, error)

	// Login authenticates by username and password. Unknown users and
	// wrong passwords both yield ErrInvalidLogin.
	Login(ctx context.Context, username string, password string) (models.User, error)

	// ResolveUser loads the account behind an authenticated session,
	// cache-first. Returns store.ErrNoUserWasFound when the account no
	// longer exists, so a stale session can be downgraded to anonymous.
	ResolveUser(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HistoryService maintains the per-user list of recently asked questions.
type HistoryService interface {
	// Recent returns the user's most recent question texts, newest first.
	Recent(ctx context.Context, userID int64) ([]string, error)

	// Record appends a question to the user's history and returns the
	// refreshed recent list with the new question in front.
	Record(ctx context.Context, userID int64, question string) ([]string, error)
}

// SignUpInput is the raw signup form payload.
type SignUpInput struct {
	Username string
	Password string
	Verify   string
	Email    string
}
