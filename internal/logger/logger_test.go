package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: "json", Output: "stderr"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.String("src", "1/0"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"src":"1/0"`)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpncalc.log")
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Format: "console", Output: "file", FilePath: path, MaxSize: 1}, &buf)
	require.NoError(t, err)

	log.Debug("converted", zap.String("rpn", "1 2 +"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "converted")
	assert.Empty(t, buf.String())
}

func TestNewErrors(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(Config{Level: "loud"}, &buf)
	assert.Error(t, err)
	_, err = New(Config{Output: "file"}, &buf)
	assert.Error(t, err)
	_, err = New(Config{Output: "syslog"}, &buf)
	assert.Error(t, err)
}
