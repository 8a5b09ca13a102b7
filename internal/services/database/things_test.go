package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PostgreSQL tests run only when DATABASE_URL points at a disposable database.
func openTestPostgres(t *testing.T) *DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := NewFromURL(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.ExecContext(context.Background(), `DROP TABLE IF EXISTS things`)
	require.NoError(t, err)
	return db
}

func TestPostgres_InsertAndList(t *testing.T) {
	db := openTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, db.EnsureSchema(ctx))
	require.NoError(t, db.EnsureSchema(ctx))

	things, err := db.ListThings(ctx)
	require.NoError(t, err)
	assert.Empty(t, things)

	idA, err := db.InsertThing(ctx, "a")
	require.NoError(t, err)
	idB, err := db.InsertThing(ctx, "b'); DROP TABLE things; --")
	require.NoError(t, err)

	things, err = db.ListThings(ctx)
	require.NoError(t, err)
	require.Len(t, things, 2)
	assert.Equal(t, idA, things[0].ID)
	assert.Equal(t, "a", things[0].Name)
	assert.Equal(t, idB, things[1].ID)
	assert.Equal(t, "b'); DROP TABLE things; --", things[1].Name)
	assert.NoError(t, db.HealthCheck(ctx))
}
