// Package handler implements the HTTP handlers for the Field Notes API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource-specific files (health.go, note.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/pkordes/field-notes/backend/internal/domain"
)

// NoteServicer defines the business operations the note handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the service or store.
type NoteServicer interface {
	Create(ctx context.Context, note domain.Note) (domain.Note, error)
	GetByID(ctx context.Context, id string) (domain.Note, error)
	List(ctx context.Context) ([]domain.Note, error)
	Update(ctx context.Context, id string, patch domain.NotePatch) (domain.Note, error)
	Delete(ctx context.Context, id string) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions(logger)).
type Server struct {
	notes NoteServicer
}

// NewServer constructs the Server with all its dependencies.
// Error logging happens in the strict-server hooks returned by StrictOptions.
func NewServer(notes NoteServicer) *Server {
	return &Server{notes: notes}
}
