// Package repo contains the storage layer for the Field Notes API.
// Notes live in process memory only; nothing survives a restart.
// No business logic lives here, only lookup, ordering, and copying.
package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkordes/field-notes/backend/internal/domain"
)

// NoteRepo defines the persistence operations for Notes.
// The service layer depends on this interface, not the concrete implementation,
// which allows the service to be unit-tested with a mock.
type NoteRepo interface {
	// Create appends a note to the end of the store and returns the stored copy.
	// Returns domain.ErrConflict if a note with the same ID already exists.
	Create(ctx context.Context, note domain.Note) (domain.Note, error)

	// GetByID returns the first note whose ID matches.
	// Returns domain.ErrNotFound if no note with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Note, error)

	// List returns every note in insertion order.
	List(ctx context.Context) ([]domain.Note, error)

	// Update replaces the note with the given ID by the result of mutate,
	// keeping its position. mutate runs while the store is locked, so the
	// read-modify-write is atomic with respect to other operations.
	// Returns domain.ErrNotFound if no note with that ID exists.
	Update(ctx context.Context, id string, mutate func(domain.Note) domain.Note) (domain.Note, error)

	// Delete removes a note by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// memNoteRepo is the in-memory implementation of NoteRepo.
// A single mutex guards the slice for the duration of every operation.
type memNoteRepo struct {
	mu    sync.Mutex
	notes []domain.Note
}

// NewNoteRepo constructs an empty in-memory NoteRepo, pre-populated with seed
// in the order given. Seed notes with duplicate IDs keep the first occurrence.
func NewNoteRepo(seed ...domain.Note) NoteRepo {
	r := &memNoteRepo{notes: make([]domain.Note, 0, len(seed))}
	for _, n := range seed {
		if r.indexOf(n.ID) >= 0 {
			continue
		}
		r.notes = append(r.notes, n.Clone())
	}
	return r
}

// Create appends note to the store.
func (r *memNoteRepo) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.Create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(note.ID) >= 0 {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.Create: id %q: %w", note.ID, domain.ErrConflict)
	}
	stored := note.Clone()
	r.notes = append(r.notes, stored)
	return stored.Clone(), nil
}

// GetByID returns the note with the given ID.
func (r *memNoteRepo) GetByID(ctx context.Context, id string) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.GetByID: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.notes[i].Clone(), nil
}

// List returns a snapshot of the store in insertion order.
// The result is never nil.
func (r *memNoteRepo) List(ctx context.Context) ([]domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.List: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Note, len(r.notes))
	for i, n := range r.notes {
		out[i] = n.Clone()
	}
	return out, nil
}

// Update applies mutate to the stored note in place.
// The ID and CreatedAt of the stored note are preserved even if mutate changes them.
func (r *memNoteRepo) Update(ctx context.Context, id string, mutate func(domain.Note) domain.Note) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.Update: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.Update: %w", domain.ErrNotFound)
	}

	current := r.notes[i]
	next := mutate(current.Clone()).Clone()
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	r.notes[i] = next

	return next.Clone(), nil
}

// Delete removes the note with the given ID, preserving the order of the rest.
func (r *memNoteRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.NoteRepo.Delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("repo.NoteRepo.Delete: %w", domain.ErrNotFound)
	}
	r.notes = append(r.notes[:i], r.notes[i+1:]...)
	return nil
}

// indexOf returns the position of the first note with the given ID, or -1.
// Callers must hold r.mu (or own r exclusively, as NewNoteRepo does).
func (r *memNoteRepo) indexOf(id string) int {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}
