package http

import (
	"errors"
	"net/http"

	"github.com/jankohoener/asknow/internal/logger"
	"github.com/jankohoener/asknow/internal/service"
	"github.com/jankohoener/asknow/models"
)

func (h *Handler) signUpForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", signUpPage{Errors: map[string]string{}})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("parsing signup form failed")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	input := service.SignUpInput{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
		Verify:   r.PostFormValue("verify"),
		Email:    r.PostFormValue("email"),
	}

	user, err := h.services.AuthService.SignUp(ctx, input)
	if err != nil {
		var fieldErrors service.ValidationErrors
		if errors.As(err, &fieldErrors) {
			log.Info().Str("username", input.Username).Msg("signup rejected, re-rendering form")
			h.render(w, r, "signup.html", signUpPage{
				Username: input.Username,
				Email:    input.Email,
				Errors:   fieldErrors,
			})
			return
		}
		log.Err(err).Msg("unexpected error occurred during signup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, user)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", loginPage{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("parsing login form failed")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogin) {
			log.Info().Msg("login rejected, re-rendering form")
			h.render(w, r, "login.html", loginPage{Error: "Invalid login"})
			return
		}
		log.Err(err).Msg("unexpected error occurred during login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	resetSessionCookie(w)
	http.Redirect(w, r, "/asknow/demo", http.StatusFound)
}

// startSession issues a session token for the user, sets the cookie and
// redirects to the demo page.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token.SignedString)
	http.Redirect(w, r, "/asknow/demo", http.StatusFound)
}
