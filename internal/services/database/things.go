package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"things-service/internal/models"
)

const postgresThingsSchema = `
	CREATE TABLE IF NOT EXISTS things (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`

// EnsureSchema creates the things table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, postgresThingsSchema); err != nil {
		return fmt.Errorf("failed to create things table: %w", err)
	}
	return nil
}

// InsertThing inserts a new thing and returns its assigned id.
func (db *DB) InsertThing(ctx context.Context, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `INSERT INTO things (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert thing: %w", err)
	}
	return id, nil
}

// ListThings returns every thing ordered by id.
func (db *DB) ListThings(ctx context.Context) ([]models.Thing, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM things ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query things: %w", err)
	}

	things, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.Thing])
	if err != nil {
		return nil, fmt.Errorf("failed to scan things: %w", err)
	}

	if things == nil {
		things = []models.Thing{}
	}
	return things, nil
}
