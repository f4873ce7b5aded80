package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dreamware/todo/internal/todo"
)

// Messages sent to clients.
const (
	msgNotJSON        = "Request must be JSON."
	msgMissingFields  = `Missing "title" or "description".`
	msgRouteNotFound  = "The requested resource was not found."
	msgMethodNotAllow = "The method is not allowed for the requested URL."
	msgInternal       = "An unexpected error occurred."
)

// badRequest is a decode or shape failure detected before the store is called.
type badRequest struct {
	msg string
}

func (e *badRequest) Error() string { return e.msg }

// notFound carries a client-facing message and matches todo.ErrNotFound.
type notFound struct {
	msg string
}

func (e *notFound) Error() string        { return e.msg }
func (e *notFound) Is(target error) bool { return target == todo.ErrNotFound }

// statusFor maps an outcome to its status code and client message. Unknown
// errors collapse to a generic 500 so internal detail never leaks.
func statusFor(err error) (int, string) {
	var br *badRequest
	var nf *notFound
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest, br.msg
	case errors.Is(err, todo.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.msg
	case errors.Is(err, todo.ErrNotFound):
		return http.StatusNotFound, msgRouteNotFound
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"request_id", RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"err", err)
	}
	s.writeErrorStatus(w, code, msg)
}

func (s *Server) writeErrorStatus(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: msg,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("encode response", "err", err)
	}
}
