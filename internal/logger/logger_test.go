package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestNew(t *testing.T) {
	t.Run("dev mode", func(t *testing.T) {
		log, err := New("debug", "dev", "")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("file mode creates log dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")

		log, err := New("info", "prod", dir)

		require.NoError(t, err)
		assert.NotNil(t, log)
		assert.DirExists(t, dir)
	})
}
