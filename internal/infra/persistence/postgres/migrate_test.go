package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"testing"

	"blog/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_blogs.sql"}, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestRunMigrations(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	t.Run("applies from embedded root", func(t *testing.T) {
		var gotDir string
		gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
			gotDir = dir

			return nil
		}

		require.NoError(t, RunMigrations(context.Background(), nil, slog.Default()))
		assert.Equal(t, ".", gotDir)
	})

	t.Run("wraps goose failure", func(t *testing.T) {
		gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
			return errors.New("boom")
		}

		err := RunMigrations(context.Background(), nil, slog.Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply migrations")
	})
}

func TestGooseSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &gooseSlogLogger{logger: slog.New(slog.NewTextHandler(&buf, nil))}

	l.Printf("OK   %s\n", "00001_create_users.sql")
	assert.Contains(t, buf.String(), "00001_create_users.sql")

	(&gooseSlogLogger{}).Printf("ignored")
}
