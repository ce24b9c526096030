// File: sqlite.go
// Title: SQLite Goal List Store
// Description: Persists the goal list in a SQLite database. Saving rewrites
//              the full list in one transaction; the list is small enough
//              that a rewrite is simpler and safer than diffing rows.
// Version: v0.1.0
// Created: 2025-08-31

package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	hberror "github.com/happybit/happybit/core/error"
	hblog "github.com/happybit/happybit/core/log"
	"github.com/happybit/happybit/internal/goal"
	"github.com/happybit/happybit/utils/timex"
)

// SQLiteStore persists the goal list in a SQLite database
type SQLiteStore struct {
	db     *sql.DB
	logger *hblog.Logger
	mutex  sync.Mutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path   string
	Logger *hblog.Logger
}

// DefaultSQLiteConfig returns the default store configuration
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/happybit.db",
	}
}

// NewSQLiteStore opens the database at the configured path and creates the
// schema if it does not exist yet
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Logger == nil {
		cfg.Logger = hblog.GetDefault()
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, hberror.Wrap(err, "failed to create data directory").
			WithCode(hberror.CodeDatabaseError).
			WithDetail("path", dir)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, hberror.Wrap(err, "failed to open database").
			WithCode(hberror.CodeDatabaseError).
			WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{
		db:     db,
		logger: cfg.Logger.WithField("component", "storage-sqlite"),
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, hberror.Wrap(err, "failed to initialize schema").
			WithCode(hberror.CodeDatabaseError)
	}

	store.logger.Info("store opened", hblog.Fields{"path": cfg.Path})
	return store, nil
}

// initSchema creates the tables and indices
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS habits (
		id TEXT PRIMARY KEY,
		goal_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		interval INTEGER NOT NULL,
		due_date TEXT NOT NULL,
		FOREIGN KEY (goal_id) REFERENCES goals(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS progress (
		habit_id TEXT NOT NULL,
		done_date TEXT NOT NULL,
		PRIMARY KEY (habit_id, done_date),
		FOREIGN KEY (habit_id) REFERENCES habits(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_habits_goal ON habits(goal_id, position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Load reads the complete goal list in display order
func (s *SQLiteStore) Load(ctx context.Context) (*goal.List, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	list := goal.NewList()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, start_date, end_date
		FROM goals ORDER BY position
	`)
	if err != nil {
		return nil, hberror.Wrap(err, "failed to query goals").
			WithCode(hberror.CodeDatabaseError)
	}
	defer rows.Close()

	for rows.Next() {
		var g goal.Goal
		var label, start, end string
		if err := rows.Scan(&g.ID, &g.Name, &label, &start, &end); err != nil {
			return nil, hberror.Wrap(err, "failed to scan goal row").
				WithCode(hberror.CodeDataCorruption)
		}
		goalType, ok := goal.ParseLabel(label)
		if !ok {
			return nil, hberror.Newf("unknown goal type label %q in database", label).
				WithCode(hberror.CodeDataCorruption).
				WithDetail("goal", g.ID)
		}
		g.Type = goalType
		if g.Start, err = timex.ParseCompactDate(start); err != nil {
			return nil, hberror.Wrap(err, "corrupt start date").
				WithCode(hberror.CodeDataCorruption).
				WithDetail("goal", g.ID)
		}
		if g.End, err = timex.ParseCompactDate(end); err != nil {
			return nil, hberror.Wrap(err, "corrupt end date").
				WithCode(hberror.CodeDataCorruption).
				WithDetail("goal", g.ID)
		}
		list.Add(&g)
	}
	if err := rows.Err(); err != nil {
		return nil, hberror.Wrap(err, "failed to iterate goals").
			WithCode(hberror.CodeDatabaseError)
	}

	for _, g := range list.Goals() {
		if err := s.loadHabits(ctx, g); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("goal list loaded", hblog.Fields{"goals": list.Len()})
	return list, nil
}

// loadHabits reads the habits and progress of one goal
func (s *SQLiteStore) loadHabits(ctx context.Context, g *goal.Goal) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, interval, due_date
		FROM habits WHERE goal_id = ? ORDER BY position
	`, g.ID)
	if err != nil {
		return hberror.Wrap(err, "failed to query habits").
			WithCode(hberror.CodeDatabaseError).
			WithDetail("goal", g.ID)
	}
	defer rows.Close()

	for rows.Next() {
		var h goal.Habit
		var due string
		if err := rows.Scan(&h.ID, &h.Name, &h.Interval, &due); err != nil {
			return hberror.Wrap(err, "failed to scan habit row").
				WithCode(hberror.CodeDataCorruption)
		}
		if h.Due, err = timex.ParseCompactDate(due); err != nil {
			return hberror.Wrap(err, "corrupt due date").
				WithCode(hberror.CodeDataCorruption).
				WithDetail("habit", h.ID)
		}
		g.AddHabit(&h)
	}
	if err := rows.Err(); err != nil {
		return hberror.Wrap(err, "failed to iterate habits").
			WithCode(hberror.CodeDatabaseError)
	}

	for _, h := range g.Habits {
		if err := s.loadProgress(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

// loadProgress reads the completed dates of one habit
func (s *SQLiteStore) loadProgress(ctx context.Context, h *goal.Habit) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT done_date FROM progress WHERE habit_id = ? ORDER BY done_date
	`, h.ID)
	if err != nil {
		return hberror.Wrap(err, "failed to query progress").
			WithCode(hberror.CodeDatabaseError).
			WithDetail("habit", h.ID)
	}
	defer rows.Close()

	for rows.Next() {
		var done string
		if err := rows.Scan(&done); err != nil {
			return hberror.Wrap(err, "failed to scan progress row").
				WithCode(hberror.CodeDataCorruption)
		}
		date, err := timex.ParseCompactDate(done)
		if err != nil {
			return hberror.Wrap(err, "corrupt progress date").
				WithCode(hberror.CodeDataCorruption).
				WithDetail("habit", h.ID)
		}
		h.Progress = append(h.Progress, goal.Progress{Date: date})
	}
	return rows.Err()
}

// Save rewrites the complete goal list in one transaction
func (s *SQLiteStore) Save(ctx context.Context, list *goal.List) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return hberror.Wrap(err, "failed to begin transaction").
			WithCode(hberror.CodeDatabaseError)
	}
	defer tx.Rollback()

	for _, table := range []string{"progress", "habits", "goals"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return hberror.Wrap(err, "failed to clear table").
				WithCode(hberror.CodeDatabaseError).
				WithDetail("table", table)
		}
	}

	for gi, g := range list.Goals() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO goals (id, position, name, type, start_date, end_date)
			VALUES (?, ?, ?, ?, ?, ?)
		`, g.ID, gi, g.Name, g.Type.Label(),
			timex.FormatCompactDate(g.Start), timex.FormatCompactDate(g.End))
		if err != nil {
			return hberror.Wrap(err, "failed to insert goal").
				WithCode(hberror.CodeDatabaseError).
				WithDetail("goal", g.ID)
		}

		for hi, h := range g.Habits {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO habits (id, goal_id, position, name, interval, due_date)
				VALUES (?, ?, ?, ?, ?, ?)
			`, h.ID, g.ID, hi, h.Name, h.Interval, timex.FormatCompactDate(h.Due))
			if err != nil {
				return hberror.Wrap(err, "failed to insert habit").
					WithCode(hberror.CodeDatabaseError).
					WithDetail("habit", h.ID)
			}

			for _, p := range h.Progress {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO progress (habit_id, done_date) VALUES (?, ?)
				`, h.ID, timex.FormatCompactDate(p.Date))
				if err != nil {
					return hberror.Wrap(err, "failed to insert progress").
						WithCode(hberror.CodeDatabaseError).
						WithDetail("habit", h.ID)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return hberror.Wrap(err, "failed to commit").
			WithCode(hberror.CodeDatabaseError)
	}

	s.logger.Debug("goal list saved", hblog.Fields{"goals": list.Len()})
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
