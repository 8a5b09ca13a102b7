package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"things-service/internal/models"
)

const sqliteThingsSchema = `
	CREATE TABLE IF NOT EXISTS things (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`

// SQLiteDB is a things gateway backed by a SQLite file.
type SQLiteDB struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at path.
// The things table is not created here; call EnsureSchema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database.
func (s *SQLiteDB) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// HealthCheck verifies database connectivity.
func (s *SQLiteDB) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureSchema creates the things table if it does not exist.
func (s *SQLiteDB) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteThingsSchema); err != nil {
		return fmt.Errorf("failed to create things table: %w", err)
	}
	return nil
}

// InsertThing inserts a new thing and returns its assigned id.
func (s *SQLiteDB) InsertThing(ctx context.Context, name string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `INSERT INTO things (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert thing: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// ListThings returns every thing ordered by id.
func (s *SQLiteDB) ListThings(ctx context.Context) ([]models.Thing, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM things ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query things: %w", err)
	}
	defer rows.Close()

	things := []models.Thing{}
	for rows.Next() {
		var thing models.Thing
		if err := rows.Scan(&thing.ID, &thing.Name); err != nil {
			return nil, fmt.Errorf("failed to scan thing: %w", err)
		}
		things = append(things, thing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate things: %w", err)
	}

	return things, nil
}
