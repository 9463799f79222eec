package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"blog/internal/errors"
	"blog/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogLogger{logger: logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// gooseSlogLogger routes goose progress output into slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Info("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Error("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}
