package repo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/field-notes/backend/internal/domain"
	"github.com/pkordes/field-notes/backend/internal/repo"
)

// noteFixture returns a domain.Note with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func noteFixture(id string) domain.Note {
	const ts domain.Timestamp = "2026-03-01T09:00:00.000Z"
	return domain.Note{
		ID:        id,
		Title:     "Lichen survey",
		Body:      "North face of the boulder field.",
		Tags:      []string{"lichen"},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func ids(notes []domain.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestNoteRepo_NewWithSeed(t *testing.T) {
	r := repo.NewNoteRepo(repo.SeedNotes()...)

	notes, err := r.List(context.Background())

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, repo.SeedNoteID, notes[0].ID)
	assert.Equal(t, "My Field Note", notes[0].Title)
	assert.Equal(t, []string{"nature", "assessment"}, notes[0].Tags)
}

func TestNoteRepo_NewWithSeed_SkipsDuplicateIDs(t *testing.T) {
	first := noteFixture("a")
	dup := noteFixture("a")
	dup.Title = "duplicate"

	r := repo.NewNoteRepo(first, dup)

	notes, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Lichen survey", notes[0].Title)
}

func TestNoteRepo_List_EmptyIsNotNil(t *testing.T) {
	r := repo.NewNoteRepo()

	notes, err := r.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepo_Create_AppendsInOrder(t *testing.T) {
	r := repo.NewNoteRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := r.Create(ctx, noteFixture(id))
		require.NoError(t, err)
	}

	notes, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(notes))
}

func TestNoteRepo_Create_DuplicateID(t *testing.T) {
	r := repo.NewNoteRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, noteFixture("a"))
	require.NoError(t, err)

	_, err = r.Create(ctx, noteFixture("a"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	notes, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1, "store must be unchanged after a rejected insert")
}

func TestNoteRepo_GetByID(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"), noteFixture("b"))

	got, err := r.GetByID(context.Background(), "b")

	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
}

func TestNoteRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"))

	_, err := r.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteRepo_ReturnedNotesDoNotAliasStore(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"))
	ctx := context.Background()

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Tags[0] = "mutated"

	again, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"lichen"}, again.Tags)
}

func TestNoteRepo_Update_InPlace(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"), noteFixture("b"), noteFixture("c"))
	ctx := context.Background()

	updated, err := r.Update(ctx, "b", func(n domain.Note) domain.Note {
		n.Title = "Renamed"
		return n
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	notes, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(notes), "position must not change")
	assert.Equal(t, "Renamed", notes[1].Title)
}

func TestNoteRepo_Update_PreservesIdentity(t *testing.T) {
	original := noteFixture("a")
	r := repo.NewNoteRepo(original)

	updated, err := r.Update(context.Background(), "a", func(n domain.Note) domain.Note {
		n.ID = "hijacked"
		n.CreatedAt = ""
		return n
	})

	require.NoError(t, err)
	assert.Equal(t, "a", updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
}

func TestNoteRepo_Update_NotFound(t *testing.T) {
	r := repo.NewNoteRepo()
	called := false

	_, err := r.Update(context.Background(), "ghost", func(n domain.Note) domain.Note {
		called = true
		return n
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, called, "mutate must not run for a missing note")
}

func TestNoteRepo_Delete(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"), noteFixture("b"), noteFixture("c"))
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "b"))

	_, err := r.GetByID(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrNotFound, "note should be gone after delete")

	notes, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, ids(notes))
}

func TestNoteRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"))

	err := r.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteRepo_CancelledContext(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Create(ctx, noteFixture("b"))
	assert.ErrorIs(t, err, context.Canceled)

	err = r.Delete(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)

	notes, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(notes))
}

// TestNoteRepo_ConcurrentUpdates verifies that concurrent read-modify-write
// updates are serialised by the store lock. Run with -race.
func TestNoteRepo_ConcurrentUpdates(t *testing.T) {
	r := repo.NewNoteRepo(noteFixture("a"))
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Update(ctx, "a", func(n domain.Note) domain.Note {
				n.Tags = append(n.Tags, "t")
				return n
			})
			assert.NoError(t, err)
		}()
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Create(ctx, noteFixture(fmt.Sprintf("n-%d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, got.Tags, 1+workers, "no update may be lost")

	notes, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1+workers)
}
