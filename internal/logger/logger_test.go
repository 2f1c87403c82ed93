package logger

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_WritesJSONAndHistory(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "info")

	l.Log("hello")
	l.Info().Int("marker_id", 7).Msg("selected")

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"marker_id":7`)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[1], "marker_id=7")
}

func TestLog_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "warn")

	l.Info().Msg("quiet")
	l.Warn().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Len(t, l.Lines(), 1)
}

func TestLog_UnknownLevelDefaultsToInfo(t *testing.T) {
	l := NewWriter(io.Discard, "chatty")
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	assert.Len(t, l.Lines(), 1)
}

func TestLines_CappedAndCopied(t *testing.T) {
	l := NewWriter(io.Discard, "info")
	for i := 0; i < maxLines+20; i++ {
		l.Log(fmt.Sprintf("line %d", i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.Contains(t, lines[0], "line 20")

	lines[0] = "mutated"
	assert.NotEqual(t, "mutated", l.Lines()[0])
}

func TestNew_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "markers.log")
	l := New(path, "info")
	l.Log("on disk")
	require.NoError(t, l.Close())
	assert.FileExists(t, path)
}
