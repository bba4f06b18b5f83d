package handler

import (
	"context"
	"errors"

	"github.com/pkordes/field-notes/backend/internal/domain"
	"github.com/pkordes/field-notes/backend/internal/handler/gen"
)

// ListNotes handles GET /v1/notes.
func (s *Server) ListNotes(ctx context.Context, _ gen.ListNotesRequestObject) (gen.ListNotesResponseObject, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}

	// make, not var: an empty store must encode as [] rather than null.
	resp := make(gen.ListNotes200JSONResponse, len(notes))
	for i, n := range notes {
		resp[i] = noteToResponse(n)
	}
	return resp, nil
}

// GetNote handles GET /v1/notes/{id}.
func (s *Server) GetNote(ctx context.Context, req gen.GetNoteRequestObject) (gen.GetNoteResponseObject, error) {
	note, err := s.notes.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetNote404JSONResponse(errorBody(msgNotFound)), nil
		}
		return nil, err
	}

	return gen.GetNote200JSONResponse(noteToResponse(note)), nil
}

// CreateNote handles POST /v1/notes.
func (s *Server) CreateNote(ctx context.Context, req gen.CreateNoteRequestObject) (gen.CreateNoteResponseObject, error) {
	created, err := s.notes.Create(ctx, requestToNote(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateNote400JSONResponse(errorBody(msgTitleBodyNeeded)), nil
		}
		return nil, err
	}

	return gen.CreateNote201JSONResponse(noteToResponse(created)), nil
}

// UpdateNote handles PATCH /v1/notes/{id}.
// An absent body is an empty patch: only updatedAt changes.
func (s *Server) UpdateNote(ctx context.Context, req gen.UpdateNoteRequestObject) (gen.UpdateNoteResponseObject, error) {
	updated, err := s.notes.Update(ctx, req.Id, requestToPatch(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateNote404JSONResponse(errorBody(msgNotFound)), nil
		}
		return nil, err
	}

	return gen.UpdateNote200JSONResponse(noteToResponse(updated)), nil
}

// DeleteNote handles DELETE /v1/notes/{id}.
func (s *Server) DeleteNote(ctx context.Context, req gen.DeleteNoteRequestObject) (gen.DeleteNoteResponseObject, error) {
	if err := s.notes.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteNote404JSONResponse(errorBody(msgNotFound)), nil
		}
		return nil, err
	}

	return gen.DeleteNote204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToNote converts a CreateNoteRequest body into a domain.Note.
// Missing fields stay at their zero value; the service decides whether that is valid.
func requestToNote(body *gen.CreateNoteRequest) domain.Note {
	var n domain.Note
	if body == nil {
		return n
	}
	if body.Title != nil {
		n.Title = *body.Title
	}
	if body.Body != nil {
		n.Body = *body.Body
	}
	if body.Tags != nil {
		n.Tags = copyTags(*body.Tags)
	}
	return n
}

// requestToPatch converts an UpdateNoteRequest body into a domain.NotePatch.
// JSON null and absent keys both map to nil, meaning "keep the stored value".
func requestToPatch(body *gen.UpdateNoteRequest) domain.NotePatch {
	if body == nil {
		return domain.NotePatch{}
	}
	p := domain.NotePatch{
		Title: body.Title,
		Body:  body.Body,
	}
	if body.UpdatedAt != nil {
		ts := domain.Timestamp(*body.UpdatedAt)
		p.UpdatedAt = &ts
	}
	if body.Tags != nil {
		p.Tags = copyTags(*body.Tags)
	}
	return p
}

// copyTags returns a non-nil copy of tags, so an explicit [] survives as "clear".
func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// noteToResponse converts a domain.Note into the generated gen.Note type.
func noteToResponse(n domain.Note) gen.Note {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return gen.Note{
		Id:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Tags:      tags,
		CreatedAt: n.CreatedAt.String(),
		UpdatedAt: n.UpdatedAt.String(),
	}
}
