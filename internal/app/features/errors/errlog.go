// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger pairs a zap logger with user-facing error pages so
// handlers can log the real cause and show a friendly message in one
// call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs an internal error and renders a 500-style page.
// userMsg is what the visitor sees; the error detail stays in the log.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, op string, err error, userMsg, backURL string) {
	e.log.Error(op, zap.Error(err), zap.String("path", r.URL.Path))
	e.renderError(w, r, http.StatusInternalServerError, "Server error", userMsg, backURL)
}

// LogBadRequest logs a client error and renders a 400-style page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, op string, err error, userMsg, backURL string) {
	e.log.Warn(op, zap.Error(err), zap.String("path", r.URL.Path))
	e.renderError(w, r, http.StatusBadRequest, "Invalid request", userMsg, backURL)
}

func (e *ErrorLogger) renderError(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", pageData{
		Title:   title,
		Message: msg,
		BackURL: backURL,
	})
}
