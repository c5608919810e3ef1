package arch

import (
	"os"
	"os/exec"
	"strings"

	"github.com/archup/archup/internal/privilege"
	"github.com/archup/archup/internal/shell"
)

// Request carries one upgrade request. The core only reads from it.
type Request struct {
	// Backend is a backend name, or empty/Autodetect for priority-ordered
	// detection.
	Backend string
	// AssumeYes suppresses the backend's confirmation prompts.
	AssumeYes bool
	// Cleanup requests a cache-clean invocation after the upgrade.
	Cleanup bool
	// ShowNews enables the pre-upgrade news check on backends that have one.
	ShowNews bool
	// Args holds per-backend extra arguments, split on whitespace and
	// appended after each backend's mandatory flags.
	Args ExtraArgs
}

// ExtraArgs holds free-form extra argument strings per backend.
// Yay is shared by the yay and paru family.
type ExtraArgs struct {
	Yay          string
	GarudaUpdate string
	Trizen       string
	Pikaur       string
	Pamac        string
	AuraAUR      string
	AuraPacman   string
}

// System abstracts the OS probes backends and the resolver need.
type System interface {
	LookPath(file string) (string, error)
	Getenv(key string) string
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// Context bundles a request with its collaborators for one dispatch call.
// Nothing in it persists beyond that call.
type Context struct {
	Request   Request
	Runner    shell.Runner
	System    System
	Privilege privilege.Finder
}

func (c *Context) system() System {
	if c.System == nil {
		return RealSystem{}
	}
	return c.System
}

// privilegeHandle lazily queries the escalation handle. Only backends that
// need root-equivalent execution call this.
func (c *Context) privilegeHandle() (privilege.Handle, bool) {
	finder := c.Privilege
	if finder == nil {
		finder = privilege.Detector{}
	}
	return finder.Find()
}

// execPathEnv builds the PATH override for invocations that shell out to the
// low-level package tool: /usr/bin is prepended so an alternate pacman
// earlier on the user's PATH cannot shadow the system one.
func execPathEnv(sys System) map[string]string {
	return map[string]string{"PATH": "/usr/bin:" + sys.Getenv("PATH")}
}

// splitArgs splits a free-form extra-argument string on whitespace.
func splitArgs(raw string) []string {
	return strings.Fields(raw)
}
