package api

import "github.com/dreamware/todo/internal/storage"

// ErrorResponse is the body of every 4xx and 5xx response.
type ErrorResponse struct {
	Error   string `json:"error"`   // status text, e.g. "Not Found"
	Message string `json:"message"` // human-readable detail
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	storage.StoreStats
}

// createRequest is the typed body of POST /todos. Pointers distinguish a
// missing field from a zero value.
type createRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
