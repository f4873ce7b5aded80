package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no todo has the requested ID.
	ErrNotFound = errors.New("todo not found")

	// ErrValidation is the sentinel matched by every *ValidationError.
	ErrValidation = errors.New("invalid todo")
)

// Todo is a single to-do item.
type Todo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// New builds a Todo without validating it. Use a Store to create todos that
// are visible to clients.
func New(id int, title, description string, completed bool) Todo {
	return Todo{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	}
}

// Apply overwrites the fields present in p. The ID is never changed.
func (t *Todo) Apply(p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Validate rejects empty patches and present-but-blank text fields.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return &ValidationError{Reason: "no fields to update"}
	}
	if p.Title != nil && isBlank(*p.Title) {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if p.Description != nil && isBlank(*p.Description) {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	return nil
}

// ValidateNew checks the fields required to create a todo.
func ValidateNew(title, description string) error {
	if isBlank(title) {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if isBlank(description) {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	return nil
}

// ValidationError describes why a create or update was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Filter selects todos by case-insensitive substring match. Empty fields
// match everything.
type Filter struct {
	Title       string
	Description string
}

// Matches reports whether t satisfies every non-empty criterion of f.
func (f Filter) Matches(t Todo) bool {
	if f.Title != "" && !containsFold(t.Title, f.Title) {
		return false
	}
	if f.Description != "" && !containsFold(t.Description, f.Description) {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
