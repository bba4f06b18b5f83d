// Package service contains the business logic for the Field Notes API.
// Services validate inputs, stamp identifiers and timestamps, and orchestrate
// repo calls. Storage details live behind repo interfaces.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/field-notes/backend/internal/domain"
	"github.com/pkordes/field-notes/backend/internal/repo"
)

// options holds the injectable dependencies of NoteService.
type options struct {
	now   func() time.Time
	newID func() string
}

// Option configures a NoteService.
type Option func(*options)

// WithClock replaces the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator replaces the function used to mint note IDs.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func defaultOptions() *options {
	return &options{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// NoteService implements business logic for Note operations.
type NoteService struct {
	repo  repo.NoteRepo
	now   func() time.Time
	newID func() string
}

// NewNoteService constructs a NoteService backed by the provided NoteRepo.
func NewNoteService(r repo.NoteRepo, opts ...Option) *NoteService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &NoteService{repo: r, now: o.now, newID: o.newID}
}

// Create validates and stores a new note.
// Title and Body must be non-empty. A nil Tags slice becomes empty.
// ID, CreatedAt and UpdatedAt on the input are ignored and set by the service;
// timestamps use domain.TimestampLayout.
func (s *NoteService) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	if note.Title == "" || note.Body == "" {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w: title and body are required", domain.ErrValidation)
	}

	now := domain.NewTimestamp(s.now())
	note.ID = s.newID()
	note.CreatedAt = now
	note.UpdatedAt = now
	if note.Tags == nil {
		note.Tags = []string{}
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single note by ID.
func (s *NoteService) GetByID(ctx context.Context, id string) (domain.Note, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.GetByID: %w", err)
	}
	return note, nil
}

// List returns all notes in insertion order. The result is never nil.
func (s *NoteService) List(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.NoteService.List: %w", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

// Update merges patch over the note with the given ID.
// Fields left nil in patch keep their stored value; UpdatedAt defaults to now.
func (s *NoteService) Update(ctx context.Context, id string, patch domain.NotePatch) (domain.Note, error) {
	now := s.now()
	updated, err := s.repo.Update(ctx, id, func(n domain.Note) domain.Note {
		return n.Apply(patch, now)
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a note by ID.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.NoteService.Delete: %w", err)
	}
	return nil
}
