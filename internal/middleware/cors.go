// Package middleware provides reusable HTTP middleware for the Field Notes API.
package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry must be a full origin (scheme + host, no trailing slash), or "*"
// to accept requests from any origin.
// Allowed methods cover the full REST surface of the API. With "*" any
// requested header is allowed too, so every preflight from any origin passes.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	allowedHeaders := []string{"Content-Type", "Authorization", "X-Request-Id"}
	if slices.Contains(allowedOrigins, "*") {
		allowedHeaders = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: allowedHeaders,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
