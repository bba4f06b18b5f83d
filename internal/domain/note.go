// Package domain contains the core data types for the Field Notes application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Note is a single field note: free text with a title, an ordered list of
// tags, and creation/update timestamps.
// ID and CreatedAt never change after the note is created.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// NotePatch carries the fields of a partial update.
// A nil field means "not supplied" and leaves the stored value untouched.
// Tags distinguishes nil (not supplied) from an empty slice (clear all tags).
type NotePatch struct {
	Title     *string
	Body      *string
	Tags      []string
	UpdatedAt *Timestamp
}

// Apply merges p over n and returns the result.
// UpdatedAt is taken verbatim from the patch when supplied, otherwise set to now.
// ID and CreatedAt are always carried over from n.
func (n Note) Apply(p NotePatch, now time.Time) Note {
	out := n.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Body != nil {
		out.Body = *p.Body
	}
	if p.Tags != nil {
		out.Tags = cloneTags(p.Tags)
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	} else {
		out.UpdatedAt = NewTimestamp(now)
	}
	return out
}

// Clone returns a copy of n that shares no memory with it.
// A nil Tags slice is normalised to an empty one so the JSON form is always [].
func (n Note) Clone() Note {
	n.Tags = cloneTags(n.Tags)
	return n
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
