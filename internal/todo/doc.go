// Package todo defines the Todo entity, the partial-update patch applied to it,
// and the validation rules shared by the store and the HTTP layer.
//
// # Overview
//
// A Todo is a plain value. It is created only by a Store (which allocates its
// ID) and changed only by applying a Patch. The JSON form of a Todo is its
// transport representation, with keys in a fixed order:
//
//	{"id": 1, "title": "A", "description": "B", "completed": false}
//
// # Patches
//
// A Patch carries any subset of the mutable fields. Absent fields are nil and
// leave the entity untouched. A Patch has no ID field, so decoding a request
// body that contains "id" silently drops it and the entity's identity can never
// change through an update.
//
// # Errors
//
// ErrNotFound and ErrValidation are the two expected failure kinds. Validation
// failures are returned as *ValidationError, which matches ErrValidation under
// errors.Is.
package todo
