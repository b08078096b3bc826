package logger

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsAndLines(t *testing.T) {
	log := NewAt("")
	log.Infof("scene built: %d entities", 3)
	log.Warnf("anchor %q not found", "wings")
	log.Debugf("dropped %d non-objects", 1)

	lines := log.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "INFO")
	assert.Contains(t, lines[0], "scene built: 3 entities")
	assert.Contains(t, lines[1], "WARN")
	assert.Contains(t, lines[2], "DEBUG")
}

func TestLinesReturnsCopy(t *testing.T) {
	log := NewAt("")
	log.Infof("first")

	lines := log.Lines()
	lines[0] = "mutated"
	assert.NotEqual(t, "mutated", log.Lines()[0])
}

func TestTruncateShortStringUntouched(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hello", Truncate("hello", 5))
}

func TestTruncateLongString(t *testing.T) {
	got := Truncate(strings.Repeat("a", 50), 20)
	assert.Equal(t, strings.Repeat("a", 17)+"...", got)
	assert.Len(t, got, 20)
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	// Each rune is 3 bytes; a byte-index cut at 7 would land mid-rune.
	s := strings.Repeat("日", 10)
	got := Truncate(s, 10)
	assert.True(t, len(got) <= 10)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.True(t, utf8.ValidString(got))
}
