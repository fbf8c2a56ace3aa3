package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestMinimalEncoderEncodeEntry(t *testing.T) {
	enc := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 7, 30, 13, 4, 35, 0, time.UTC),
		LoggerName: "comparator",
		Message:    "pair compared",
	}
	fields := []zapcore.Field{
		zapcore.Field{Key: FieldTraceID, Type: zapcore.StringType, String: "a1b2c3"},
		zapcore.Field{Key: FieldMatch, Type: zapcore.BoolType, Integer: 1},
		zapcore.Field{Key: FieldAttempt, Type: zapcore.Int64Type, Integer: 2},
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "comparator")
	assert.Contains(t, out, "pair compared")
	assert.Contains(t, out, "a1b2c3")
	assert.Contains(t, out, "match=true")
	assert.Contains(t, out, "attempt=2")
}

func TestMinimalEncoderWarnLevelAddsLabel(t *testing.T) {
	enc := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "reference data reload failed",
	}

	buf, err := enc.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "WARN")
}

func TestSetThemeIgnoresUnknown(t *testing.T) {
	SetTheme("everforest")
	assert.Equal(t, "everforest", currentTheme)

	SetTheme("nonexistent")
	assert.Equal(t, "everforest", currentTheme)
}

func TestMinimalEncoderClone(t *testing.T) {
	enc := newMinimalEncoder()
	clone := enc.Clone()
	assert.NotNil(t, clone)
}
