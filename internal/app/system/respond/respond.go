// internal/app/system/respond/respond.go

// Package respond writes the canonical JSON bodies for the API.
//
// Every error body is {"message": "..."}; success bodies are either the raw
// resource(s) or a {"success": true, ...} envelope built by the handler.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies. The largest legitimate payload is a
// challenge create with a how-to list; 1 MB is generous.
const maxBodyBytes = 1 << 20

// errorBody is the canonical error shape.
type errorBody struct {
	Message string `json:"message"`
}

// JSON writes v with the given status. Encoding failures are swallowed: the
// status line is already on the wire and there is nothing useful to do.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"message": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Message: msg})
}

// Internal writes a generic 500. Detail never reaches the client; callers log
// the underlying error server-side.
func Internal(w http.ResponseWriter, msg string) {
	Error(w, http.StatusInternalServerError, msg)
}

// Decode parses the request body into dst, enforcing the size cap and
// rejecting trailing garbage. An empty body is an error; PATCH handlers that
// accept an empty patch should not (none do).
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
