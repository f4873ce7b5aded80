// Package api exposes a storage.Store over HTTP.
//
// Routes:
//
//	GET    /                  greeting (text/plain)
//	GET    /health            store statistics
//	GET    /todos             200, all todos in insertion order
//	POST   /todos             201, created todo; 400 on bad body or blank fields
//	GET    /todos/search      200, todos filtered by ?title= and ?description=
//	GET    /todos/{id}        200, or 404
//	PUT    /todos/{id}        200, partially updated todo; 400 or 404
//	DELETE /todos/{id}        204 with empty body, or 404
//
// Every error response has the same JSON shape:
//
//	{"error": "Not Found", "message": "Todo 99 not found."}
//
// Request bodies must be application/json and decode into the typed request
// structures; wrong value types (for example "completed": "yes") are rejected
// with 400. Any failure the adapter does not anticipate, panics included, is
// reported as a 500 with a generic message and logged with the request ID.
package api
