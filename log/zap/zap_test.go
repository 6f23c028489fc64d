package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/tiercache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}

	l.Debug("cache miss", tiercache.Fields{"key": "a", "cache": "mem"})
	l.Warn("backfill failed", tiercache.Fields{"err": errors.New("disk full")})
	l.Info("plain", nil)
	l.Error("boom", tiercache.Fields{})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "cache miss", entries[0].Message)
	require.Len(t, entries[0].Context, 2)
	assert.Equal(t, "cache", entries[0].Context[0].Key)
	assert.Equal(t, "key", entries[0].Context[1].Key)
	assert.Equal(t, map[string]any{"cache": "mem", "key": "a"}, entries[0].ContextMap())

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "disk full", entries[1].ContextMap()["err"])

	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Empty(t, entries[2].Context)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}
