package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps pets in a local SQLite database, one row per pet name.
// Load returns the pet called Name, or the most recently saved one when Name
// is empty.
type SQLiteStore struct {
	db   *sql.DB
	Name string
}

// OpenSQLite opens (creating if needed) the database at dbPath
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS pets (
		name TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 1,
		experience REAL NOT NULL DEFAULT 0,
		hunger REAL NOT NULL,
		mood REAL NOT NULL,
		energy REAL NOT NULL,
		cleanliness REAL NOT NULL,
		health REAL NOT NULL,
		saved_at INTEGER NOT NULL
	);`)
	return err
}

// Load reads a pet. It returns ErrNoSave when there is no matching row.
func (s *SQLiteStore) Load(ctx context.Context) (Record, error) {
	const cols = `SELECT name, type, level, experience, hunger, mood, energy, cleanliness, health, saved_at FROM pets`

	var row *sql.Row
	if s.Name != "" {
		row = s.db.QueryRowContext(ctx, cols+` WHERE name = ?`, s.Name)
	} else {
		row = s.db.QueryRowContext(ctx, cols+` ORDER BY saved_at DESC LIMIT 1`)
	}

	var rec Record
	var savedAt int64
	err := row.Scan(
		&rec.PetName, &rec.PetType, &rec.PetLevel, &rec.PetExperience,
		&rec.Hunger, &rec.Mood, &rec.Energy, &rec.Cleanliness, &rec.Health, &savedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNoSave
	}
	if err != nil {
		return rec, fmt.Errorf("failed to load pet: %w", err)
	}
	rec.SavedAt = time.UnixMilli(savedAt).UTC()
	return rec, nil
}

// Save upserts the record keyed by pet name
func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	query := `
		INSERT INTO pets (name, type, level, experience, hunger, mood, energy, cleanliness, health, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			type=excluded.type,
			level=excluded.level,
			experience=excluded.experience,
			hunger=excluded.hunger,
			mood=excluded.mood,
			energy=excluded.energy,
			cleanliness=excluded.cleanliness,
			health=excluded.health,
			saved_at=excluded.saved_at
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.PetName, rec.PetType, rec.PetLevel, rec.PetExperience,
		rec.Hunger, rec.Mood, rec.Energy, rec.Cleanliness, rec.Health, rec.SavedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save pet: %w", err)
	}
	log.Printf("Saved %s to sqlite", rec.PetName)
	return nil
}

// Names lists saved pets, most recent first
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM pets ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
