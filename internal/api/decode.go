package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
)

// decodeJSON reads a single JSON value into v. The request must declare an
// application/json body no larger than limit.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		return &badRequest{msg: msgNotJSON}
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &badRequest{msg: "Request body too large."}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &badRequest{msg: "Field \"" + typeErr.Field + "\" has the wrong type."}
		}
		return &badRequest{msg: msgNotJSON}
	}
	// Anything after the value, including a stray closing delimiter, is
	// rejected.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &badRequest{msg: msgNotJSON}
	}
	return nil
}
