package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"blog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingConfig(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}, Logger: slog.Default()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is missing")
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, ok := poolWaitReport(prev, prev)
	assert.False(t, ok)

	level, attrs, ok := poolWaitReport(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.NotEmpty(t, attrs)

	level, _, ok = poolWaitReport(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}
