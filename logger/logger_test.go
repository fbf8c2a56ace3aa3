package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestCleanupBeforeInitializeDoesNotPanic(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		_ = Cleanup()
	})
	Logger = zap.NewNop().Sugar()
}

func TestComponentLogger(t *testing.T) {
	require.NoError(t, Initialize(false))
	named := ComponentLogger("comparator")
	assert.NotNil(t, named)
}

func TestInitializeAtVerbosityAcceptsEveryLevel(t *testing.T) {
	for v := VerbosityUser; v <= VerbosityAll; v++ {
		err := InitializeAtVerbosity(false, v)
		require.NoError(t, err)
		assert.NotNil(t, Logger)
	}
}
