// Package privilege discovers a means of running commands with elevated
// rights: either a PATH-installed escalation helper or, when the process is
// already root, direct execution.
package privilege

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// helperNames lists supported escalation helpers in preference order.
var helperNames = []string{"sudo", "doas", "run0"}

// Handle is a resolved way to run a command privileged.
type Handle struct {
	// Path is the escalation helper executable. Empty when Direct.
	Path string
	// Direct means the process already has root rights and commands run
	// without a wrapper.
	Direct bool
}

// Wrap rewrites a command line to run through the handle.
func (h Handle) Wrap(path string, args []string) (string, []string) {
	if h.Direct {
		return path, args
	}
	return h.Path, append([]string{path}, args...)
}

// Finder locates a privilege handle. Backends that need escalation query it
// lazily, at the moment they need it.
type Finder interface {
	Find() (Handle, bool)
}

// System abstracts the OS probes used by detection.
type System interface {
	LookPath(file string) (string, error)
	Geteuid() int
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Geteuid returns the effective user id of the process.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}

// Detector finds a handle by checking the effective uid first and then the
// known escalation helpers in order.
type Detector struct {
	System System
}

// Find returns the first usable handle, or false when none exists.
func (d Detector) Find() (Handle, bool) {
	sys := d.System
	if sys == nil {
		sys = RealSystem{}
	}
	if sys.Geteuid() == 0 {
		return Handle{Direct: true}, true
	}
	for _, name := range helperNames {
		if path, err := sys.LookPath(name); err == nil {
			return Handle{Path: path}, true
		}
	}
	return Handle{}, false
}
