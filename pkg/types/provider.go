package types

import "errors"

// CatalogFilter narrows a catalog snapshot fetch. Providers may apply it
// partially or not at all; the matching core re-applies every filter before
// yardage matching, so provider-side filtering is only an optimization.
type CatalogFilter struct {
	ProjectType string
	CraftType   string
	Weight      string
	Designer    string
	FreeOnly    bool
}

// StashProvider supplies a complete read-only stash snapshot for one user.
// A failed fetch aborts the whole match operation; an empty slice is a valid
// snapshot (user owns no yarn), not an error.
type StashProvider interface {
	FetchStash(userID string) ([]StashEntry, error)
}

// CatalogProvider supplies a complete read-only pattern-catalog snapshot.
type CatalogProvider interface {
	FetchPatternCatalog(filter CatalogFilter) ([]Pattern, error)
}

// Provider errors.
var (
	ErrUserIDEmpty = errors.New("user ID must not be empty")
)
