//go:build unit
// +build unit

package logger

import (
	"testing"

	"rsa_vault_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFactory(t *testing.T) {
	t.Run("ConsoleLogger", func(t *testing.T) {
		log, err := newLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		})
		require.NoError(t, err)
		assert.IsType(t, &ConsoleLogger{}, log)
	})

	t.Run("FileLogger", func(t *testing.T) {
		log, err := newLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelDebug,
			LogType:    config.LogTypeFile,
			FilePath:   t.TempDir() + "/test.log",
			MaxSize:    5,
			MaxBackups: 2,
			MaxAge:     7,
		})
		require.NoError(t, err)
		assert.IsType(t, &FileLogger{}, log)
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		_, err := newLogger(&config.LoggerSettings{
			LogLevel: "loud",
			LogType:  config.LogTypeConsole,
		})
		assert.Error(t, err)
	})

	t.Run("SingletonInit", func(t *testing.T) {
		settings := &config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		}
		require.NoError(t, InitLogger(settings))

		first, err := GetLogger()
		require.NoError(t, err)

		// a second init is a no-op
		require.NoError(t, InitLogger(settings))
		second, err := GetLogger()
		require.NoError(t, err)
		assert.Same(t, first, second)
	})
}
