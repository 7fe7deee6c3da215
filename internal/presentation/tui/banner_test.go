package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner_ContainsArtAndVersion(t *testing.T) {
	out := Banner(termenv.Ascii, "1.2.3")

	for _, line := range bannerLines {
		assert.Contains(t, out, line)
	}
	assert.Contains(t, out, "v1.2.3")
}

func TestBanner_NoVersion(t *testing.T) {
	assert.NotContains(t, Banner(termenv.Ascii, ""), "  v")
}

func TestPrintBanner_SkipsNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, PrintBanner(f, "1.0.0"))
	assert.False(t, PrintBanner(nil, "1.0.0"))

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteBanner(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, writeBanner(&buf, termenv.Ascii, "0.1.0"))
	assert.Contains(t, buf.String(), "v0.1.0")
}
