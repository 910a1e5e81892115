package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidLogin            = errors.New("invalid login")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ValidationErrors maps a form field name to a user-facing message, so
// the signup form can be re-rendered with per-field feedback.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}
