package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_EmitsOnFileWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("two\n"), 0o644))

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a watch event")
	}
}

func TestNew_MissingPathIsNotAnError(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.NoError(t, err)
	defer w.Close()
}

func TestClose_StopsThePump(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
