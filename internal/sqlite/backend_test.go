package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	err := b.Attach(config)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	// Verify database file created
	dbPath := filepath.Join(tmpDir, "stitchmatch.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("stitchmatch.db not created")
	}

	// Verify double attach fails
	err = b.Attach(config)
	if !errors.Is(err, types.ErrAlreadyAttached) {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	b.Detach()
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{Backend: "postgres"})
	if !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}

	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	_, err := b.FetchStash("user-1")
	if !errors.Is(err, types.ErrBackendDetached) {
		t.Errorf("expected ErrBackendDetached, got %v", err)
	}
	_, err = b.FetchPatternCatalog(types.CatalogFilter{})
	if !errors.Is(err, types.ErrBackendDetached) {
		t.Errorf("expected ErrBackendDetached, got %v", err)
	}
}

// Data written before a detach survives a re-attach to the same directory.
func TestBackend_DataPersistsAcrossAttaches(t *testing.T) {
	tmpDir := t.TempDir()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if _, err := b.AddStashEntry("user-1", types.StashEntry{WeightLabel: "dk", Yardage: 100}); err != nil {
		t.Fatalf("AddStashEntry failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	entries, err := b2.FetchStash("user-1")
	if err != nil {
		t.Fatalf("FetchStash failed: %v", err)
	}
	if len(entries) != 1 || entries[0].WeightLabel != "dk" {
		t.Errorf("expected persisted entry, got %v", entries)
	}
}
