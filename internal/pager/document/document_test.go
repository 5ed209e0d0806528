package document_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/glance/internal/pager/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGetLine_TrailingNewline(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "two.txt", []byte("alpha\nbeta\n"))
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.LineCount())
	line0, ok := doc.GetLine(0)
	require.True(t, ok)
	assert.Equal(t, "alpha", line0)
	line1, ok := doc.GetLine(1)
	require.True(t, ok)
	assert.Equal(t, "beta", line1)
}

func TestGetLine_NoTrailingNewline(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "notrail.txt", []byte("alpha\nbeta"))
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.LineCount())
	line1, ok := doc.GetLine(1)
	require.True(t, ok)
	assert.Equal(t, "beta", line1)
}

func TestGetLine_CRLFOnly(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "crlf.txt", []byte("\r\n"))
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 1, doc.LineCount())
	line0, ok := doc.GetLine(0)
	require.True(t, ok)
	assert.Equal(t, "", line0)
}

func TestEmptyDocument(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "empty.txt", nil)
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.LineCount())
	_, ok := doc.GetLine(0)
	assert.False(t, ok)
}

func TestSingleByteNoNewline(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "one.txt", []byte("x"))
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 1, doc.LineCount())
	line0, ok := doc.GetLine(0)
	require.True(t, ok)
	assert.Equal(t, "x", line0)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	original := "one\ntwo\nthree\nfour"
	path := writeTemp(t, "roundtrip.txt", []byte(original))
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	var lines []string
	for i := 0; i < doc.LineCount(); i++ {
		line, ok := doc.GetLine(i)
		require.True(t, ok)
		lines = append(lines, line)
	}
	assert.Equal(t, original, strings.Join(lines, "\n"))
}

func TestBinaryDetection(t *testing.T) {
	t.Parallel()
	data := []byte{0x00, 0x01, 0x02, 'h', 'i'}
	path := writeTemp(t, "bin.dat", data)
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	assert.True(t, doc.IsBinary())
	assert.Equal(t, doc.HexLineCount(), doc.DisplayLineCount())
}

func TestHexDump(t *testing.T) {
	t.Parallel()
	data := make([]byte, 33)
	for i := range data {
		data[i] = byte(i)
	}
	path := writeTemp(t, "hex.dat", data)
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	require.Equal(t, 3, doc.HexLineCount())

	row0, ok := doc.HexLine(0)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(row0, "00000000  "))
	assert.Contains(t, row0, "|................|")

	row2, ok := doc.HexLine(2)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(row2, "00000020  20"))
	assert.True(t, strings.HasSuffix(row2, "| "+strings.Repeat(" ", 15)+"|"))
}

func TestReloadIdempotent(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "stable.txt", []byte("a\nb\nc\n"))
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	before := doc.TextSnapshot()
	require.NoError(t, doc.Reload())
	after := doc.TextSnapshot()
	assert.Equal(t, before, after)
}

func TestTextSnapshotDecouplesFromStorage(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "snap.txt", []byte("x\ny\nz\n"))
	doc, err := document.FromPath(path)
	require.NoError(t, err)

	snap := doc.TextSnapshot()
	require.NoError(t, os.WriteFile(path, []byte("different\n"), 0o644))
	assert.Equal(t, []string{"x", "y", "z"}, snap)
}
