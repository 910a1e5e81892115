package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/jankohoener/asknow/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded HTML templates. Construct it once and
// hand it to the Handler; parsing happens at startup so malformed
// templates fail fast.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// demoPage backs the plain demo page shown to visitors without a question.
type demoPage struct {
	LoggedIn bool
}

// answerPage backs the answer listing, for one anonymous answer as well
// as the logged-in history view.
type answerPage struct {
	LoggedIn    bool
	Question    string
	AnswersList []models.Answer
	ErrCode     int
	Message     string
}

// signUpPage re-renders the signup form with the submitted values and
// per-field errors.
type signUpPage struct {
	Username string
	Email    string
	Errors   map[string]string
}

// loginPage backs the login form; Error is the single form-level message.
type loginPage struct {
	Error string
}
