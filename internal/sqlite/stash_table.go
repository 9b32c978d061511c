// This file implements stash entry storage: the FetchStash snapshot used by
// the matching engine plus the add/list/delete surface used by the CLI.
package sqlite

import (
	"fmt"
	"time"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

// StashRecord is a stored stash entry with its identity, as listed by the
// CLI. The engine consumes only the embedded StashEntry.
type StashRecord struct {
	EntryID   string           `json:"entry_id"`
	UserID    string           `json:"user_id"`
	Entry     types.StashEntry `json:"entry"`
	CreatedAt time.Time        `json:"created_at"`
}

// FetchStash returns the complete stash snapshot for one user. An empty
// slice means the user owns no yarn; it is not an error.
func (b *Backend) FetchStash(userID string) ([]types.StashEntry, error) {
	if userID == "" {
		return nil, types.ErrUserIDEmpty
	}

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT weight_label, yardage FROM stash_entries WHERE user_id = ? ORDER BY created_at, rowid",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stash for user %s: %w", userID, err)
	}
	defer rows.Close()

	var entries []types.StashEntry
	for rows.Next() {
		var e types.StashEntry
		if err := rows.Scan(&e.WeightLabel, &e.Yardage); err != nil {
			return nil, fmt.Errorf("scanning stash entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddStashEntry persists a new stash entry for the user and returns its
// generated ID. Yardage must not be negative.
func (b *Backend) AddStashEntry(userID string, entry types.StashEntry) (string, error) {
	if userID == "" {
		return "", types.ErrUserIDEmpty
	}
	if entry.WeightLabel == "" {
		return "", types.ErrInvalidName
	}
	if entry.Yardage < 0 {
		return "", types.ErrNegativeYardage
	}

	db, err := b.conn()
	if err != nil {
		return "", err
	}

	id := generateUUID()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = db.Exec(
		"INSERT INTO stash_entries (entry_id, user_id, weight_label, yardage, created_at) VALUES (?, ?, ?, ?, ?)",
		id, userID, entry.WeightLabel, entry.Yardage, now,
	)
	if err != nil {
		return "", fmt.Errorf("inserting stash entry: %w", err)
	}
	return id, nil
}

// ListStashEntries returns the user's stored entries with their IDs, oldest
// first.
func (b *Backend) ListStashEntries(userID string) ([]StashRecord, error) {
	if userID == "" {
		return nil, types.ErrUserIDEmpty
	}

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT entry_id, user_id, weight_label, yardage, created_at FROM stash_entries WHERE user_id = ? ORDER BY created_at, rowid",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stash for user %s: %w", userID, err)
	}
	defer rows.Close()

	var records []StashRecord
	for rows.Next() {
		var r StashRecord
		var createdAt string
		if err := rows.Scan(&r.EntryID, &r.UserID, &r.Entry.WeightLabel, &r.Entry.Yardage, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning stash record: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteStashEntry removes one entry by ID. Returns ErrNotFound if no entry
// exists with that ID.
func (b *Backend) DeleteStashEntry(entryID string) error {
	if entryID == "" {
		return types.ErrInvalidID
	}

	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM stash_entries WHERE entry_id = ?", entryID)
	if err != nil {
		return fmt.Errorf("deleting stash entry %s: %w", entryID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
