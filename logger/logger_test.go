package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes tagged levels", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "", &buf)
		require.NoError(t, err)

		l.Info("ready")
		l.Warn("slow")
		l.Error("broken")

		out := buf.String()
		assert.Contains(t, out, "[APP] [INFO] ready")
		assert.Contains(t, out, "[APP] [WARN] slow")
		assert.Contains(t, out, "[APP] [ERROR] broken")
	})

	t.Run("colors the tag", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SVC", "\033[36m", &buf)
		require.NoError(t, err)

		l.Info("hello")
		assert.Contains(t, buf.String(), "\033[36m[SVC]\033[0m [INFO] hello")
	})

	t.Run("rejects missing name or writer", func(t *testing.T) {
		_, err := New("", "", &bytes.Buffer{})
		assert.Error(t, err)

		_, err = New("APP", "", nil)
		assert.Error(t, err)
	})
}
