package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/field-notes/backend/internal/domain"
)

var (
	created = domain.Timestamp("2026-01-27T20:20:45+01:00")
	later   = time.Date(2026, 1, 27, 20, 20, 45, 120_000_000, time.UTC)
	laterTS = domain.Timestamp("2026-01-27T20:20:45.120Z")
)

func noteFixture() domain.Note {
	return domain.Note{
		ID:        "note-1",
		Title:     "Heron sighting",
		Body:      "Two grey herons by the weir.",
		Tags:      []string{"birds", "river"},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func strPtr(s string) *string { return &s }

func TestNote_Apply_EmptyPatchRefreshesUpdatedAtOnly(t *testing.T) {
	n := noteFixture()

	got := n.Apply(domain.NotePatch{}, later)

	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, n.Title, got.Title)
	assert.Equal(t, n.Body, got.Body)
	assert.Equal(t, n.Tags, got.Tags)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, laterTS, got.UpdatedAt)
}

func TestNote_Apply_TitleOnly(t *testing.T) {
	n := noteFixture()

	got := n.Apply(domain.NotePatch{Title: strPtr("X")}, later)

	assert.Equal(t, "X", got.Title)
	assert.Equal(t, n.Body, got.Body)
	assert.Equal(t, n.Tags, got.Tags)
	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, n.CreatedAt, got.CreatedAt)
	assert.Equal(t, laterTS, got.UpdatedAt)
}

func TestNote_Apply_AllFields(t *testing.T) {
	n := noteFixture()
	override := domain.Timestamp("2001-02-03T04:05:06.000+01:00")

	got := n.Apply(domain.NotePatch{
		Title:     strPtr("New title"),
		Body:      strPtr("New body"),
		Tags:      []string{"x"},
		UpdatedAt: &override,
	}, later)

	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "New body", got.Body)
	assert.Equal(t, []string{"x"}, got.Tags)
	// A caller-supplied updatedAt is kept verbatim, not replaced by now.
	assert.Equal(t, override, got.UpdatedAt)
	assert.Equal(t, created, got.CreatedAt)
}

func TestNote_Apply_EmptyTagsClears(t *testing.T) {
	got := noteFixture().Apply(domain.NotePatch{Tags: []string{}}, later)

	require.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestNote_Apply_EmptyStringsOverwrite(t *testing.T) {
	// Only null/absent fields are skipped; an empty string is still a value.
	got := noteFixture().Apply(domain.NotePatch{Title: strPtr("")}, later)

	assert.Equal(t, "", got.Title)
}

func TestNote_Apply_DoesNotAliasPatchTags(t *testing.T) {
	tags := []string{"a", "b"}
	got := noteFixture().Apply(domain.NotePatch{Tags: tags}, later)

	tags[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, got.Tags)
}

func TestNote_Clone(t *testing.T) {
	n := noteFixture()
	c := n.Clone()

	c.Tags[0] = "mutated"

	assert.Equal(t, "birds", n.Tags[0])
}

func TestNote_Clone_NilTagsBecomeEmpty(t *testing.T) {
	n := noteFixture()
	n.Tags = nil

	c := n.Clone()

	require.NotNil(t, c.Tags)
	assert.Empty(t, c.Tags)
}

func TestNewTimestamp_FixedMillisecondLayout(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want domain.Timestamp
	}{
		{"whole second", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), "2026-03-01T12:00:00.000Z"},
		{"trailing zero kept", time.Date(2026, 3, 1, 12, 0, 0, 120_000_000, time.UTC), "2026-03-01T12:00:00.120Z"},
		{"sub-millisecond dropped", time.Date(2026, 3, 1, 12, 0, 0, 123_456_789, time.UTC), "2026-03-01T12:00:00.123Z"},
		{"converted to UTC", time.Date(2026, 3, 1, 13, 0, 0, 0, time.FixedZone("", 3600)), "2026-03-01T12:00:00.000Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.NewTimestamp(tc.in))
		})
	}
}
