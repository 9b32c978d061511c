package match

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

// fakeStash returns a fixed snapshot or a fixed error.
type fakeStash struct {
	entries []types.StashEntry
	err     error
}

func (f *fakeStash) FetchStash(userID string) ([]types.StashEntry, error) {
	return f.entries, f.err
}

// fakeCatalog returns a fixed snapshot or a fixed error, ignoring the
// filter: the engine must filter authoritatively on its own.
type fakeCatalog struct {
	patterns []types.Pattern
	err      error
}

func (f *fakeCatalog) FetchPatternCatalog(filter types.CatalogFilter) ([]types.Pattern, error) {
	return f.patterns, f.err
}

func TestMatchPatternsEndToEnd(t *testing.T) {
	stash := &fakeStash{entries: []types.StashEntry{
		{WeightLabel: "Worsted (9 wpi)", Yardage: 150},
		{WeightLabel: "Aran (8 wpi)", Yardage: 150},
		{WeightLabel: "DK (11 wpi)", Yardage: 200},
	}}
	catalog := &fakeCatalog{patterns: []types.Pattern{
		{PatternID: "bulky-hat", Name: "Chunky Hat", WeightLabel: "Bulky (7 wpi)", YardageMax: f64(300)},
		{PatternID: "dk-socks", Name: "House Socks", WeightLabel: "DK (11 wpi)", YardageMin: f64(200)},
		{PatternID: "no-bounds", Name: "Mystery", WeightLabel: "DK (11 wpi)"},
		{PatternID: "lace-shawl", Name: "Gossamer", WeightLabel: "Lace", YardageMax: f64(800)},
	}}

	e := NewEngine(stash, catalog, nil)
	resp, err := e.MatchPatterns("user-1", types.MatchFilters{}, 1, 30)
	require.NoError(t, err)

	require.Len(t, resp.Patterns, 2)
	assert.Equal(t, "bulky-hat", resp.Patterns[0].PatternID)
	assert.Equal(t, "2 strands of Worsted = Chunky", resp.Patterns[0].HeldYarnDescription)
	assert.Equal(t, "dk-socks", resp.Patterns[1].PatternID)
	assert.Empty(t, resp.Patterns[1].HeldYarnDescription)

	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Pages)
	assert.False(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)
}

// Duplicate catalog rows for the same pattern collapse to one result.
func TestMatchPatternsDeduplicates(t *testing.T) {
	stash := &fakeStash{entries: []types.StashEntry{
		{WeightLabel: "worsted", Yardage: 1000},
	}}
	dup := types.Pattern{PatternID: "p1", Name: "Twice Joined", WeightLabel: "Aran (8 wpi)", YardageMax: f64(400)}
	catalog := &fakeCatalog{patterns: []types.Pattern{dup, dup}}

	e := NewEngine(stash, catalog, nil)
	resp, err := e.MatchPatterns("user-1", types.MatchFilters{}, 1, 30)
	require.NoError(t, err)

	require.Len(t, resp.Patterns, 1)
	assert.Equal(t, 1, resp.Pagination.Total)
	// Substitution path: no held derivation.
	assert.Empty(t, resp.Patterns[0].HeldYarnDescription)
}

func TestMatchPatternsPagination(t *testing.T) {
	stash := &fakeStash{entries: []types.StashEntry{
		{WeightLabel: "dk", Yardage: 10000},
	}}
	patterns := make([]types.Pattern, 25)
	for i := range patterns {
		patterns[i] = types.Pattern{
			PatternID:   fmt.Sprintf("p%02d", i+1),
			Name:        fmt.Sprintf("Pattern %d", i+1),
			WeightLabel: "DK (11 wpi)",
			YardageMin:  f64(100),
		}
	}
	catalog := &fakeCatalog{patterns: patterns}

	e := NewEngine(stash, catalog, nil)
	resp, err := e.MatchPatterns("user-1", types.MatchFilters{}, 2, 10)
	require.NoError(t, err)

	require.Len(t, resp.Patterns, 10)
	assert.Equal(t, "p11", resp.Patterns[0].PatternID)
	assert.Equal(t, "p20", resp.Patterns[9].PatternID)
	assert.Equal(t, 3, resp.Pagination.Pages)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestMatchPatternsWeightOverride(t *testing.T) {
	stash := &fakeStash{entries: []types.StashEntry{
		{WeightLabel: "Worsted (9 wpi)", Yardage: 500},
		{WeightLabel: "Aran (8 wpi)", Yardage: 100},
	}}
	catalog := &fakeCatalog{patterns: []types.Pattern{
		{PatternID: "aran-vest", WeightLabel: "Aran (8 wpi)", YardageMax: f64(400)},
	}}

	e := NewEngine(stash, catalog, nil)

	resp, err := e.MatchPatterns("user-1", types.MatchFilters{}, 1, 30)
	require.NoError(t, err)
	assert.Len(t, resp.Patterns, 1, "full compatibility set covers the pattern")

	resp, err = e.MatchPatterns("user-1", types.MatchFilters{Weight: "aran"}, 1, 30)
	require.NoError(t, err)
	assert.Empty(t, resp.Patterns, "narrowed to Aran alone, 100 yards is not enough")
}

func TestMatchPatternsEmptyStash(t *testing.T) {
	e := NewEngine(&fakeStash{}, &fakeCatalog{patterns: []types.Pattern{
		{PatternID: "p1", WeightLabel: "dk", YardageMin: f64(1)},
	}}, nil)

	resp, err := e.MatchPatterns("user-1", types.MatchFilters{}, 1, 30)
	require.NoError(t, err)
	assert.Empty(t, resp.Patterns)
	assert.Equal(t, 0, resp.Pagination.Total)
}

func TestMatchPatternsUpstreamFailures(t *testing.T) {
	boom := errors.New("database gone")

	t.Run("stash fetch failure aborts", func(t *testing.T) {
		e := NewEngine(&fakeStash{err: boom}, &fakeCatalog{}, nil)
		resp, err := e.MatchPatterns("user-1", types.MatchFilters{}, 1, 30)
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("catalog fetch failure aborts", func(t *testing.T) {
		e := NewEngine(&fakeStash{}, &fakeCatalog{err: boom}, nil)
		resp, err := e.MatchPatterns("user-1", types.MatchFilters{}, 1, 30)
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestMatchPatternsEmptyUserID(t *testing.T) {
	e := NewEngine(&fakeStash{}, &fakeCatalog{}, nil)
	_, err := e.MatchPatterns("", types.MatchFilters{}, 1, 30)
	assert.ErrorIs(t, err, types.ErrUserIDEmpty)
}
