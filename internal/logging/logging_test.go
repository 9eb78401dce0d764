package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelWarning)

	SetLevel(LevelWarning)
	Debug("debug %d", 1)
	Info("info %d", 2)
	Warning("warning %d", 3)
	Error("error %d", 4)

	s := buf.String()
	assert.NotContains(t, s, "debug 1")
	assert.NotContains(t, s, "info 2")
	assert.Contains(t, s, "warning 3")
	assert.Contains(t, s, "error 4")

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("debug %d", 5)
	assert.Contains(t, buf.String(), "debug 5")

	buf.Reset()
	SetLevel(LevelNone)
	Error("error %d", 6)
	assert.Empty(t, buf.String())
}

func TestStructured(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel(LevelInfo)
	defer SetLevel(LevelWarning)

	Logger().Info().Str("endpoint", "blocks").Int("status", 200).Msg("request")
	assert.Contains(t, buf.String(), "endpoint=blocks")
	assert.Contains(t, buf.String(), "status=200")
}
