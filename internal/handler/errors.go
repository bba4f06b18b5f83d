package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/field-notes/backend/internal/handler/gen"
)

// Client-facing error messages. These strings are part of the API contract.
const (
	msgNotFound        = "Note not found"
	msgTitleBodyNeeded = "Title and body are required"
	msgInvalidBody     = "Invalid request body"
	msgBodyTooLarge    = "Request body too large"
	msgInternal        = "Internal server error"
)

// errorBody returns the {"error": message} payload shared by every failure response.
func errorBody(message string) gen.Error {
	return gen.Error{Error: message}
}

// StrictOptions returns the strict-server options used in production and tests.
// Request errors (undecodable JSON, oversized bodies) become 400/413 with a JSON
// body; anything a handler returns as an error becomes a logged 500.
func StrictOptions(log *slog.Logger) gen.StrictHTTPServerOptions {
	if log == nil {
		log = slog.Default()
	}
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
				return
			}
			log.InfoContext(r.Context(), "rejected request body",
				"error", err,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
			writeError(w, http.StatusBadRequest, msgInvalidBody)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "unhandled handler error",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
			writeError(w, http.StatusInternalServerError, msgInternal)
		},
	}
}

// writeError writes a JSON error body outside the generated response types.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // nothing useful to do if the client has gone away.
	json.NewEncoder(w).Encode(errorBody(message))
}
