// Package clip copies text to the platform clipboard by shelling out to
// whichever clipboard utility is available, the way gitstat shells out to
// git: no cgo, no platform clipboard bindings, just os/exec against a
// well-known command.
package clip

import (
	"bytes"
	"os/exec"
	"runtime"

	"github.com/mna/glance/internal/pager/glanceerr"
)

// candidate is one clipboard command to try, in order, for the current
// platform.
type candidate struct {
	name string
	args []string
}

func candidatesFor(goos string) []candidate {
	switch goos {
	case "darwin":
		return []candidate{{"pbcopy", nil}}
	case "windows":
		return []candidate{{"clip", nil}}
	default:
		return []candidate{
			{"wl-copy", nil},
			{"xclip", []string{"-selection", "clipboard"}},
			{"xsel", []string{"--clipboard", "--input"}},
		}
	}
}

// Copy writes text to the system clipboard via the first available
// candidate command for runtime.GOOS. If none is installed, it returns a
// glanceerr.ClipboardUnavailable error; callers surface this into
// status_message rather than treating it as fatal.
func Copy(text string) error {
	for _, c := range candidatesFor(runtime.GOOS) {
		path, err := exec.LookPath(c.name)
		if err != nil {
			continue
		}
		cmd := exec.Command(path, c.args...)
		cmd.Stdin = bytes.NewBufferString(text)
		if err := cmd.Run(); err != nil {
			continue
		}
		return nil
	}
	return glanceerr.New(glanceerr.ClipboardUnavailable, "clip.Copy", nil)
}
