package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Body  string   `json:"body,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

func (n *note) DocID() string      { return n.ID }
func (n *note) SetDocID(id string) { n.ID = id }

func newNotes(t *testing.T, defaults func() []note) *Collection[note, *note] {
	t.Helper()
	return New[note, *note](filepath.Join(t.TempDir(), "notes.json"), defaults)
}

func TestInsertAssignsIDAndPersists(t *testing.T) {
	col := newNotes(t, nil)

	created, err := col.Insert(note{Title: "first"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "first", created.Title)

	got, err := col.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListInitializesAbsentFileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	col := New[note, *note](path, func() []note {
		return []note{{ID: "seed-1", Title: "seeded"}}
	})

	recs := col.List()
	require.Len(t, recs, 1)
	assert.Equal(t, "seed-1", recs[0].ID)

	// The seed must now exist on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seeded"`)
}

func TestListFallsBackToDefaultsOnBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	col := New[note, *note](path, func() []note {
		return []note{{ID: "seed-1", Title: "seeded"}}
	})

	recs := col.List()
	require.Len(t, recs, 1)
	assert.Equal(t, "seed-1", recs[0].ID)
}

func TestFileIsPrettyPrintedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	col := New[note, *note](path, nil)

	_, err := col.Insert(note{Title: "first"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('['), data[0])
	assert.Contains(t, string(data), "\n  ")
}

func TestUpdateShallowMerge(t *testing.T) {
	col := newNotes(t, nil)
	created, err := col.Insert(note{Title: "first", Body: "body", Tags: []string{"a", "b"}})
	require.NoError(t, err)

	patch := map[string]json.RawMessage{
		"title": json.RawMessage(`"renamed"`),
	}
	merged, err := col.Update(created.ID, patch)
	require.NoError(t, err)

	// Patched field overwritten, everything else retained.
	assert.Equal(t, "renamed", merged.Title)
	assert.Equal(t, "body", merged.Body)
	assert.Equal(t, []string{"a", "b"}, merged.Tags)

	// Applying the same patch again yields the same record.
	again, err := col.Update(created.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, merged, again)
}

func TestUpdateReplacesNestedListsWhole(t *testing.T) {
	col := newNotes(t, nil)
	created, err := col.Insert(note{Title: "first", Tags: []string{"a", "b"}})
	require.NoError(t, err)

	merged, err := col.Update(created.ID, map[string]json.RawMessage{
		"tags": json.RawMessage(`["c"]`),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, merged.Tags)
}

func TestUpdateCannotChangeID(t *testing.T) {
	col := newNotes(t, nil)
	created, err := col.Insert(note{Title: "first"})
	require.NoError(t, err)

	merged, err := col.Update(created.ID, map[string]json.RawMessage{
		"id": json.RawMessage(`"hijacked"`),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, merged.ID)

	_, err = col.Get("hijacked")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRejectsInvalidShape(t *testing.T) {
	col := newNotes(t, nil)
	created, err := col.Insert(note{Title: "first"})
	require.NoError(t, err)

	_, err = col.Update(created.ID, map[string]json.RawMessage{
		"title": json.RawMessage(`42`),
	})
	require.Error(t, err)

	// Nothing was written.
	got, err := col.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
}

func TestUpdateMissingID(t *testing.T) {
	col := newNotes(t, nil)
	_, err := col.Update("nope", map[string]json.RawMessage{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	col := newNotes(t, nil)
	created, err := col.Insert(note{Title: "first"})
	require.NoError(t, err)

	require.NoError(t, col.Delete(created.ID))
	_, err = col.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingLeavesCollectionUnchanged(t *testing.T) {
	col := newNotes(t, nil)
	_, err := col.Insert(note{Title: "first"})
	require.NoError(t, err)
	_, err = col.Insert(note{Title: "second"})
	require.NoError(t, err)

	assert.ErrorIs(t, col.Delete("nope"), ErrNotFound)
	assert.Len(t, col.List(), 2)
}

func TestQuery(t *testing.T) {
	col := newNotes(t, nil)
	_, err := col.Insert(note{Title: "keep"})
	require.NoError(t, err)
	_, err = col.Insert(note{Title: "drop"})
	require.NoError(t, err)
	_, err = col.Insert(note{Title: "keep"})
	require.NoError(t, err)

	matches := col.Query(func(n note) bool { return n.Title == "keep" })
	assert.Len(t, matches, 2)
}

func TestResetRestoresDefaults(t *testing.T) {
	col := newNotes(t, func() []note {
		return []note{{ID: "seed-1", Title: "seeded"}}
	})

	_, err := col.Insert(note{Title: "extra"})
	require.NoError(t, err)
	require.Len(t, col.List(), 2)

	require.NoError(t, col.Reset())
	recs := col.List()
	require.Len(t, recs, 1)
	assert.Equal(t, "seed-1", recs[0].ID)
}
