// Package storage owns the todo collection and its ID allocator.
//
// # Overview
//
// Store is the collection manager: the single owner of the ordered todo
// sequence and of the counter that hands out IDs. MemoryStore is the only
// implementation; nothing is persisted and a new store always starts empty
// with its counter at 1.
//
//	┌─────────────────────────────────────┐
//	│        HTTP adapter (api)           │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│          Store interface            │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│  MemoryStore ([]todo.Todo + nextID) │
//	└─────────────────────────────────────┘
//
// # Invariants
//
//   - IDs are pairwise distinct and strictly increasing in creation order.
//   - An ID is never reused, even after the todo holding it was deleted.
//   - The collection keeps insertion order. Update never moves an item and
//     Delete closes the gap without changing the relative order of the rest.
//
// # Outcomes
//
// Every operation returns immediately with one of its declared outcomes:
//
//	List    -> []todo.Todo (never fails)
//	Get     -> todo.Todo | todo.ErrNotFound
//	Create  -> todo.Todo | todo.ErrValidation
//	Update  -> todo.Todo | todo.ErrValidation | todo.ErrNotFound
//	Delete  -> bool (false means not found)
//
// Update checks the patch before the ID, so an empty patch is a validation
// failure even for an unknown ID.
//
// # Concurrency and Thread Safety
//
// MemoryStore guards the slice and the counter with a sync.RWMutex. Reads take
// the shared lock, mutations take the exclusive lock, so handlers served on
// many goroutines cannot allocate the same ID twice or interleave an append
// with a removal. Returned todos are copies.
//
// # Usage Examples
//
//	store := storage.NewMemoryStore(storage.WithLogger(logger))
//
//	t, err := store.Create("Learn Go", "Read the tour", false)
//	if errors.Is(err, todo.ErrValidation) {
//	    // reject the request
//	}
//
//	done := true
//	t, err = store.Update(t.ID, todo.Patch{Completed: &done})
//
//	if !store.Delete(t.ID) {
//	    // already gone
//	}
package storage
