package http

import (
	"context"
	"net/http"

	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/utils"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "userid"

// withSession is an optional-authentication middleware: a valid session
// cookie resolves to a user, whose ID is put into the request context; a
// missing or invalid one leaves the request anonymous. It never rejects
// a request; pages decide themselves how to treat anonymous visitors.
// Invalid cookies, and valid tokens for accounts that no longer exist,
// are reset so the browser stops sending them.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), cookie.Value)
		if err != nil {
			log.Info().Msg("session cookie invalid, resetting and continuing as anonymous user")
			resetSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		// The token only proves the session was issued; the account
		// itself may have been deleted since.
		user, err := h.services.AuthService.ResolveUser(r.Context(), token.UserID)
		if err != nil {
			log.Info().Int64("user_id", token.UserID).Msg("session user not resolvable, resetting and continuing as anonymous user")
			resetSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, user.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func resetSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
