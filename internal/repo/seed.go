package repo

import "github.com/pkordes/field-notes/backend/internal/domain"

// SeedNoteID is the ID of the note every fresh store starts with.
const SeedNoteID = "550e8400-e29b-41d4-a716-446655440000"

// SeedNotes returns the records loaded into the store at process start.
// A new slice is built on every call so callers may modify it freely.
func SeedNotes() []domain.Note {
	const ts domain.Timestamp = "2026-01-27T20:20:45+01:00"
	return []domain.Note{
		{
			ID:        SeedNoteID,
			Title:     "My Field Note",
			Body:      "Observed some interesting patterns...",
			Tags:      []string{"nature", "assessment"},
			CreatedAt: ts,
			UpdatedAt: ts,
		},
	}
}
