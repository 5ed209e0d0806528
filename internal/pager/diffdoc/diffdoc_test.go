package diffdoc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/glance/internal/pager/diffdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("one\ntwo\nthree\n"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("one\nTWO\nthree\n"), 0o644))

	doc, err := diffdoc.Build(oldPath, newPath)
	require.NoError(t, err)
	defer doc.Close()

	assert.True(t, doc.IsDiff())
	assert.False(t, doc.IsBinary())
	assert.Empty(t, doc.Changes())

	var lines []string
	for i := 0; i < doc.LineCount(); i++ {
		line, ok := doc.GetLine(i)
		require.True(t, ok)
		lines = append(lines, line)
	}
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "-two")
	assert.Contains(t, joined, "+TWO")
	assert.True(t, strings.HasPrefix(lines[0], "---"))
	assert.True(t, strings.HasPrefix(lines[1], "+++"))
}
