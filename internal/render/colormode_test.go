package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColorMode_NoColorFlagWins(t *testing.T) {
	var buf bytes.Buffer
	mode := ResolveColorMode(true, "always", &buf)
	assert.False(t, mode.Enabled, "the flag outranks even an \"always\" config default")
}

func TestResolveColorMode_NonTTYWriterDisabled(t *testing.T) {
	var buf bytes.Buffer
	mode := ResolveColorMode(false, "", &buf)
	assert.False(t, mode.Enabled, "a bytes.Buffer is never a terminal")
}

func TestResolveColorMode_NOCOLOREnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	mode := ResolveColorMode(false, "always", &buf)
	assert.False(t, mode.Enabled, "NO_COLOR outranks an \"always\" config default")
}

func TestResolveColorMode_ConfigAlwaysOverridesNonTTY(t *testing.T) {
	var buf bytes.Buffer
	mode := ResolveColorMode(false, "always", &buf)
	assert.True(t, mode.Enabled)
}

func TestResolveColorMode_ConfigNeverOverridesTTYDetection(t *testing.T) {
	var buf bytes.Buffer
	mode := ResolveColorMode(false, "never", &buf)
	assert.False(t, mode.Enabled)
}

func TestResolveColorMode_ConfigAutoFallsThroughToTTYDetection(t *testing.T) {
	var buf bytes.Buffer
	mode := ResolveColorMode(false, "auto", &buf)
	assert.False(t, mode.Enabled, "\"auto\" defers to TTY detection, which is false for a buffer")
}
