package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dreamware/todo/internal/todo"
)

const greeting = "Hello, World! This is our API."

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(greeting))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		StoreStats: s.store.Stats(),
	})
}

// GET /todos
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.List())
}

// GET /todos/search?title=&description=
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.writeJSON(w, http.StatusOK, s.store.Search(todo.Filter{
		Title:       q.Get("title"),
		Description: q.Get("description"),
	}))
}

// GET /todos/{id}
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := s.store.Get(id)
	if err != nil {
		s.writeError(w, r, withID(err, id))
		return
	}
	s.writeJSON(w, http.StatusOK, t)
}

// POST /todos
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(w, r, s.opts.MaxBodyBytes, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Title == nil || req.Description == nil {
		s.writeError(w, r, &badRequest{msg: msgMissingFields})
		return
	}
	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	t, err := s.store.Create(*req.Title, *req.Description, completed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/todos/%d", t.ID))
	s.writeJSON(w, http.StatusCreated, t)
}

// PUT /todos/{id}
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var patch todo.Patch
	if err := decodeJSON(w, r, s.opts.MaxBodyBytes, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	t, err := s.store.Update(id, patch)
	if err != nil {
		s.writeError(w, r, withID(err, id))
		return
	}
	s.writeJSON(w, http.StatusOK, t)
}

// DELETE /todos/{id}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !s.store.Delete(id) {
		s.writeError(w, r, withID(todo.ErrNotFound, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeErrorStatus(w, http.StatusNotFound, msgRouteNotFound)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeErrorStatus(w, http.StatusMethodNotAllowed, msgMethodNotAllow)
}

// pathID parses the {id} route variable. The route pattern only admits
// digits, so a parse failure means the value overflows int and cannot name
// an existing todo.
func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &notFound{msg: fmt.Sprintf("Todo %s not found.", raw)}
	}
	return id, nil
}

// withID attaches the todo ID to a not-found outcome.
func withID(err error, id int) error {
	if errors.Is(err, todo.ErrNotFound) {
		return &notFound{msg: fmt.Sprintf("Todo %d not found.", id)}
	}
	return err
}
