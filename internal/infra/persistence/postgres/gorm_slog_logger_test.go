package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	base, buf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, buf.String(), "fast queries are not logged outside debug")

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 2"), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is not an error")

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 3"), errors.New("connection reset"))
	assert.Contains(t, buf.String(), "gorm query failed")
	assert.Contains(t, buf.String(), "connection reset")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 4"), nil)
	assert.Contains(t, buf.String(), "gorm slow query")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	base, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(base, cfg)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newBufferLogger()
	reqLogger, reqBuf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Info)

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "req-1")))
	l.Info(ctx, "hello %s", "world")

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "hello world")
	assert.Contains(t, reqBuf.String(), "req-1")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	base, buf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)

	l.Error(context.Background(), "ignored")
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("x"))
	assert.Empty(t, buf.String())
}
