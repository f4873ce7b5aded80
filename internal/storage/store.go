package storage

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/dreamware/todo/internal/todo"
)

// Store defines the collection of todos.
// All implementations must be thread-safe for concurrent access
type Store interface {
	// List returns every todo in insertion order
	List() []todo.Todo

	// Get returns the todo with the given ID
	// Returns todo.ErrNotFound if it doesn't exist
	Get(id int) (todo.Todo, error)

	// Create validates the fields, allocates the next ID and appends the todo
	// Returns a todo.ErrValidation error for blank title or description
	Create(title, description string, completed bool) (todo.Todo, error)

	// Update applies a partial update in place
	// Returns a todo.ErrValidation error for an empty or invalid patch,
	// todo.ErrNotFound if the ID doesn't exist
	Update(id int, patch todo.Patch) (todo.Todo, error)

	// Delete removes the todo and reports whether one was removed
	Delete(id int) bool

	// Search returns the todos matching f in insertion order
	Search(f todo.Filter) []todo.Todo

	// Stats returns collection statistics
	Stats() StoreStats
}

// StoreStats contains statistics about the store
type StoreStats struct {
	Todos  int            `json:"todos"`   // Number of todos currently held
	NextID int            `json:"next_id"` // ID the next Create will allocate
	Ops    OperationStats `json:"ops"`
}

// OperationStats counts successful operations
type OperationStats struct {
	Gets    uint64 `json:"gets"`
	Creates uint64 `json:"creates"`
	Updates uint64 `json:"updates"`
	Deletes uint64 `json:"deletes"`
}

// Option configures a MemoryStore
type Option func(*MemoryStore)

// WithLogger sets the logger used for mutation events
func WithLogger(l *slog.Logger) Option {
	return func(m *MemoryStore) {
		if l != nil {
			m.logger = l
		}
	}
}

// MemoryStore implements Store with an ordered in-memory slice
// Uses sync.RWMutex for thread-safe concurrent access
type MemoryStore struct {
	mu     sync.RWMutex // Protects todos and nextID
	todos  []todo.Todo  // Insertion-ordered collection
	nextID int          // Never decremented, IDs are never reused
	logger *slog.Logger

	gets, creates, updates, deletes atomic.Uint64
}

// NewMemoryStore creates an empty store whose first ID is 1
func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{
		nextID: 1,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// List returns a copy of the collection
func (m *MemoryStore) List() []todo.Todo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := slices.Clone(m.todos)
	if out == nil {
		out = []todo.Todo{}
	}
	return out
}

// Get returns a copy of the todo to prevent external modification
func (m *MemoryStore) Get(id int) (todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return todo.Todo{}, todo.ErrNotFound
	}
	m.gets.Add(1)
	return m.todos[idx], nil
}

// Create is the only path that grows the collection or advances nextID
func (m *MemoryStore) Create(title, description string, completed bool) (todo.Todo, error) {
	if err := todo.ValidateNew(title, description); err != nil {
		return todo.Todo{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := todo.New(m.nextID, title, description, completed)
	m.nextID++
	m.todos = append(m.todos, t)
	m.creates.Add(1)

	m.logger.Debug("todo created", "id", t.ID)
	return t, nil
}

// Update validates the patch before looking the ID up, so an empty patch is
// rejected whether or not the todo exists
func (m *MemoryStore) Update(id int, patch todo.Patch) (todo.Todo, error) {
	if err := patch.Validate(); err != nil {
		return todo.Todo{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return todo.Todo{}, todo.ErrNotFound
	}
	m.todos[idx].Apply(patch)
	m.updates.Add(1)

	m.logger.Debug("todo updated", "id", id)
	return m.todos[idx], nil
}

// Delete closes the gap left by the removed todo without reordering the rest
func (m *MemoryStore) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	m.todos = slices.Delete(m.todos, idx, idx+1)
	m.deletes.Add(1)

	m.logger.Debug("todo deleted", "id", id)
	return true
}

// Search filters a snapshot of the collection
func (m *MemoryStore) Search(f todo.Filter) []todo.Todo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]todo.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Stats returns storage statistics
func (m *MemoryStore) Stats() StoreStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return StoreStats{
		Todos:  len(m.todos),
		NextID: m.nextID,
		Ops: OperationStats{
			Gets:    m.gets.Load(),
			Creates: m.creates.Load(),
			Updates: m.updates.Load(),
			Deletes: m.deletes.Load(),
		},
	}
}

// indexOf must be called with mu held
func (m *MemoryStore) indexOf(id int) int {
	return slices.IndexFunc(m.todos, func(t todo.Todo) bool { return t.ID == id })
}
