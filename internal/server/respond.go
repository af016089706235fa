package server

import (
	"encoding/json"
	"net/http"

	"github.com/tintlab/dyeseq/pkg/errors"
	"github.com/tintlab/dyeseq/pkg/store"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to a status code via its error code and
// writes the JSON error body. Unknown errors become 500 INTERNAL_ERROR
// without leaking internals to the client.
func writeError(w http.ResponseWriter, err error) {
	if err == store.ErrNotFound {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: errors.ErrCodeNotFound, Error: "not found"})
		return
	}

	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDye, errors.ErrCodeOutOfRange:
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: code, Error: errors.UserMessage(err)})
	case errors.ErrCodeNotFound:
		writeJSON(w, http.StatusNotFound, errorResponse{Code: code, Error: errors.UserMessage(err)})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: errors.ErrCodeInternal, Error: "internal error"})
	}
}
