package clip

import (
	"testing"

	"github.com/mna/glance/internal/pager/glanceerr"
	"github.com/stretchr/testify/assert"
)

func TestCandidatesFor_Darwin(t *testing.T) {
	t.Parallel()
	cs := candidatesFor("darwin")
	assert.Len(t, cs, 1)
	assert.Equal(t, "pbcopy", cs[0].name)
}

func TestCandidatesFor_Windows(t *testing.T) {
	t.Parallel()
	cs := candidatesFor("windows")
	assert.Len(t, cs, 1)
	assert.Equal(t, "clip", cs[0].name)
}

func TestCandidatesFor_LinuxFallsThroughThreeTools(t *testing.T) {
	t.Parallel()
	cs := candidatesFor("linux")
	var names []string
	for _, c := range cs {
		names = append(names, c.name)
	}
	assert.Equal(t, []string{"wl-copy", "xclip", "xsel"}, names)
}

func TestCopy_NoCandidateOnPathIsClipboardUnavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	err := Copy("hello")
	assert.True(t, glanceerr.Is(err, glanceerr.ClipboardUnavailable))
}
