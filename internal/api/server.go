package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dreamware/todo/internal/storage"
)

// DefaultMaxBodyBytes caps request bodies when ServerOptions leaves it unset.
const DefaultMaxBodyBytes = 1 << 20

// ServerOptions configures the HTTP adapter.
type ServerOptions struct {
	Logger       *slog.Logger
	MaxBodyBytes int64
}

// Server maps HTTP requests onto a storage.Store. It holds no todo state of
// its own.
type Server struct {
	store   storage.Store
	logger  *slog.Logger
	opts    ServerOptions
	handler http.Handler
}

// NewServer builds the router and middleware chain around store.
func NewServer(store storage.Store, opts ServerOptions) *Server {
	if store == nil {
		panic("api.NewServer: store is nil")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{
		store:  store,
		logger: opts.Logger,
		opts:   opts,
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/todos", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/todos", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/todos/search", s.handleSearch).Methods(http.MethodGet)
	r.HandleFunc("/todos/{id:[0-9]+}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/todos/{id:[0-9]+}", s.handleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/todos/{id:[0-9]+}", s.handleDelete).Methods(http.MethodDelete)

	// Wrapping the router rather than using r.Use keeps the 404/405
	// handlers inside the chain.
	s.handler = s.withRequestID(s.withAccessLog(s.withRecover(r)))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
