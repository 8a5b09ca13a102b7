package config

import (
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DB_DRIVER", "DATABASE_URL", "DATABASE_ENDPOINT", "DB_HOST", "DATABASE_PORT", "DB_PORT",
		"DATABASE_NAME", "DB_NAME", "DATABASE_USER", "DB_USER", "DATABASE_PASSWORD", "DB_PASSWORD",
		"SQLITE_PATH", "EXPORT_BUCKET", "EXPORT_PREFIX", "STAGE", "LOG_LEVEL", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "things", cfg.DBName)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "things.db", cfg.SQLitePath)
	assert.Equal(t, "exports/", cfg.ExportPrefix)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_OriginalVariableNamesWin(t *testing.T) {
	t.Setenv("DATABASE_ENDPOINT", "db.internal")
	t.Setenv("DB_HOST", "ignored")
	t.Setenv("DATABASE_NAME", "inventory")
	t.Setenv("DATABASE_USER", "app")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_PORT", "not-a-number")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "inventory", cfg.DBName)
	assert.Equal(t, "app", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	// An unparsable DATABASE_PORT falls back to DB_PORT.
	assert.Equal(t, 6543, cfg.DBPort)
}

func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "local disables ssl",
			cfg:  Config{DBHost: "localhost", DBPort: 5432, DBName: "things", DBUser: "postgres", DBPassword: "pw"},
			want: "postgres://postgres:pw@localhost:5432/things?sslmode=disable",
		},
		{
			name: "remote requires ssl",
			cfg:  Config{DBHost: "things.rds.amazonaws.com", DBPort: 5432, DBName: "things", DBUser: "app", DBPassword: "pw"},
			want: "postgres://app:pw@things.rds.amazonaws.com:5432/things?sslmode=require",
		},
		{
			name: "explicit url wins",
			cfg:  Config{DBURL: "postgres://x@y/z", DBHost: "localhost"},
			want: "postgres://x@y/z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DatabaseURL())
		})
	}
}

func TestDatabaseURL_EscapesCredentials(t *testing.T) {
	cfg := Config{
		DBHost:     "db.example.com",
		DBPort:     5432,
		DBName:     "things",
		DBUser:     "app:admin",
		DBPassword: "p@ss/w#rd:?%",
	}

	parsed, err := pgx.ParseConfig(cfg.DatabaseURL())
	require.NoError(t, err)

	assert.Equal(t, "db.example.com", parsed.Host)
	assert.Equal(t, uint16(5432), parsed.Port)
	assert.Equal(t, "things", parsed.Database)
	assert.Equal(t, "app:admin", parsed.User)
	assert.Equal(t, "p@ss/w#rd:?%", parsed.Password)
}
