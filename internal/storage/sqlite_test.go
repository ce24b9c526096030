// File: sqlite_test.go
// Title: SQLite Store Tests
// Description: Tests for persisting and reloading the goal list through the
//              SQLite store.
// Version: v0.1.0
// Created: 2025-08-31

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/timex"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	cfg := DefaultSQLiteConfig()
	cfg.Path = filepath.Join(t.TempDir(), "happybit.db")

	store, err := NewSQLiteStore(cfg)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_EmptyLoad(t *testing.T) {
	store := newTestStore(t)

	list, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("Fresh database should load an empty list, got %d goals", list.Len())
	}
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := sampleList(t)
	g, _ := original.Goal(0)
	g.Habits[0].Progress = append(g.Habits[0].Progress, goal.Progress{Date: g.Start})

	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	restored, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if restored.Len() != original.Len() {
		t.Fatalf("Expected %d goals, got %d", original.Len(), restored.Len())
	}
	for i, want := range original.Goals() {
		got, _ := restored.Goal(i)
		if got.ID != want.ID || got.Name != want.Name || got.Type != want.Type {
			t.Errorf("Goal %d mismatch: got %+v, want %+v", i, got, want)
		}
		if !timex.SameDate(got.Start, want.Start) || !timex.SameDate(got.End, want.End) {
			t.Errorf("Goal %d dates mismatch", i)
		}
		if len(got.Habits) != len(want.Habits) {
			t.Fatalf("Goal %d: expected %d habits, got %d", i, len(want.Habits), len(got.Habits))
		}
	}

	rg, _ := restored.Goal(0)
	rh := rg.Habits[0]
	if len(rh.Progress) != 1 || !timex.SameDate(rh.Progress[0].Date, g.Start) {
		t.Errorf("Progress not restored: %+v", rh.Progress)
	}
}

func TestSQLiteStore_SaveIsRewrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, sampleList(t)); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	// Saving a smaller list must not leave stale rows behind
	start, _ := timex.ParseCompactDate("01012021")
	end, _ := timex.ParseCompactDate("31122021")
	smaller := goal.NewList()
	smaller.Add(goal.NewGoal("Only goal", goal.TypeStudy, start, end))

	if err := store.Save(ctx, smaller); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	restored, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if restored.Len() != 1 {
		t.Fatalf("Expected 1 goal after rewrite, got %d", restored.Len())
	}
	g, _ := restored.Goal(0)
	if g.Name != "Only goal" || g.Type != goal.TypeStudy {
		t.Errorf("Unexpected goal after rewrite: %+v", g)
	}
}
