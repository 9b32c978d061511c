// This file implements pattern catalog storage: the FetchPatternCatalog
// snapshot used by the matching engine plus the add/list/delete surface
// used by the CLI and importers.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

const patternColumns = "pattern_id, name, designer, weight_label, yardage_min, yardage_max, project_type, craft_type, url, price, image_ref, doc_ref"

// FetchPatternCatalog returns catalog records, narrowed in SQL where the
// filter allows. Designer matching and free-price detection are re-applied
// authoritatively by the matching core; the SQL narrowing is an
// optimization only.
func (b *Backend) FetchPatternCatalog(filter types.CatalogFilter) ([]types.Pattern, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + patternColumns + " FROM patterns"
	var conds []string
	var args []any

	if filter.ProjectType != "" && filter.ProjectType != "any" {
		conds = append(conds, "project_type = ?")
		args = append(args, filter.ProjectType)
	}
	if filter.CraftType != "" && filter.CraftType != "any" {
		conds = append(conds, "craft_type = ? COLLATE NOCASE")
		args = append(args, filter.CraftType)
	}
	if filter.Designer != "" {
		conds = append(conds, "designer LIKE ? COLLATE NOCASE")
		args = append(args, "%"+filter.Designer+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, rowid"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying pattern catalog: %w", err)
	}
	defer rows.Close()

	var patterns []types.Pattern
	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// AddPattern persists a catalog record. An empty PatternID gets a generated
// UUID v7. Returns the actual ID used.
func (b *Backend) AddPattern(p types.Pattern) (string, error) {
	if p.Name == "" {
		return "", types.ErrInvalidName
	}

	db, err := b.conn()
	if err != nil {
		return "", err
	}

	if p.PatternID == "" {
		p.PatternID = generateUUID()
	}
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = db.Exec(
		"INSERT INTO patterns ("+patternColumns+", created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.PatternID, p.Name, p.Designer, p.WeightLabel, p.YardageMin, p.YardageMax,
		p.ProjectType, p.CraftType, p.URL, p.Price, p.ImageRef, p.DocRef, now,
	)
	if err != nil {
		return "", fmt.Errorf("inserting pattern: %w", err)
	}
	return p.PatternID, nil
}

// GetPattern retrieves one catalog record by ID. Returns ErrNotFound if no
// pattern exists with that ID.
func (b *Backend) GetPattern(patternID string) (*types.Pattern, error) {
	if patternID == "" {
		return nil, types.ErrInvalidID
	}

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+patternColumns+" FROM patterns WHERE pattern_id = ?", patternID)
	p, err := scanPattern(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting pattern %s: %w", patternID, err)
	}
	return &p, nil
}

// DeletePattern removes one catalog record by ID. Returns ErrNotFound if no
// pattern exists with that ID.
func (b *Backend) DeletePattern(patternID string) error {
	if patternID == "" {
		return types.ErrInvalidID
	}

	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM patterns WHERE pattern_id = ?", patternID)
	if err != nil {
		return fmt.Errorf("deleting pattern %s: %w", patternID, err)
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

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanPattern hydrates one patterns row. Nullable yardage columns map to
// nil pointers.
func scanPattern(s scanner) (types.Pattern, error) {
	var p types.Pattern
	var yMin, yMax sql.NullFloat64

	err := s.Scan(
		&p.PatternID, &p.Name, &p.Designer, &p.WeightLabel, &yMin, &yMax,
		&p.ProjectType, &p.CraftType, &p.URL, &p.Price, &p.ImageRef, &p.DocRef,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, err
		}
		return p, fmt.Errorf("scanning pattern: %w", err)
	}

	if yMin.Valid {
		p.YardageMin = &yMin.Float64
	}
	if yMax.Valid {
		p.YardageMax = &yMax.Float64
	}
	return p, nil
}
