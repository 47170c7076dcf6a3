package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlogBridge_WritesThroughZapCore(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).Slog()

	logger.Info("cap sheet computed", "team_id", "tm-ironhawks", "season", 2026)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cap sheet computed", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "tm-ironhawks", fields["team_id"])
	assert.EqualValues(t, 2026, fields["season"])
}

func TestSlogBridge_LevelsAndErrors(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	logger := FromZap(zap.New(core)).Slog()

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Error("release failed", "error", errors.New("contract not found"))

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "contract not found", entries[0].ContextMap()["error"])
}

func TestSlogBridge_GroupsPrefixKeys(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).Slog().WithGroup("audit")

	logger.Info("league audit done", "findings", 3)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].ContextMap()["audit.findings"])
}
