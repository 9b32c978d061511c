package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

// setupBackend creates an attached Backend over a temp directory with a
// cleanup-deferred detach.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestStashAddAndFetch(t *testing.T) {
	b := setupBackend(t)

	id1, err := b.AddStashEntry("user-1", types.StashEntry{WeightLabel: "Worsted (9 wpi)", Yardage: 150})
	require.NoError(t, err)
	assert.NotEmpty(t, id1)

	_, err = b.AddStashEntry("user-1", types.StashEntry{WeightLabel: "DK (11 wpi)", Yardage: 200})
	require.NoError(t, err)

	// Another user's stash stays separate.
	_, err = b.AddStashEntry("user-2", types.StashEntry{WeightLabel: "lace", Yardage: 800})
	require.NoError(t, err)

	entries, err := b.FetchStash("user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Worsted (9 wpi)", entries[0].WeightLabel)
	assert.Equal(t, 150.0, entries[0].Yardage)
	assert.Equal(t, "DK (11 wpi)", entries[1].WeightLabel)
}

func TestStashFetchEmpty(t *testing.T) {
	b := setupBackend(t)

	entries, err := b.FetchStash("nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStashAddValidation(t *testing.T) {
	b := setupBackend(t)

	_, err := b.AddStashEntry("", types.StashEntry{WeightLabel: "dk", Yardage: 1})
	assert.ErrorIs(t, err, types.ErrUserIDEmpty)

	_, err = b.AddStashEntry("user-1", types.StashEntry{WeightLabel: "", Yardage: 1})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = b.AddStashEntry("user-1", types.StashEntry{WeightLabel: "dk", Yardage: -5})
	assert.ErrorIs(t, err, types.ErrNegativeYardage)
}

func TestStashListAndDelete(t *testing.T) {
	b := setupBackend(t)

	id, err := b.AddStashEntry("user-1", types.StashEntry{WeightLabel: "aran", Yardage: 400})
	require.NoError(t, err)

	records, err := b.ListStashEntries("user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].EntryID)
	assert.Equal(t, "user-1", records[0].UserID)
	assert.Equal(t, 400.0, records[0].Entry.Yardage)
	assert.False(t, records[0].CreatedAt.IsZero())

	require.NoError(t, b.DeleteStashEntry(id))

	records, err = b.ListStashEntries("user-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.ErrorIs(t, b.DeleteStashEntry(id), types.ErrNotFound)
	assert.ErrorIs(t, b.DeleteStashEntry(""), types.ErrInvalidID)
}
