package arch

import (
	"errors"

	"github.com/archup/archup/internal/privilege"
	"github.com/archup/archup/internal/shell"
)

// fakeSystem resolves executables from a fixed map.
type fakeSystem struct {
	paths map[string]string
	env   map[string]string
}

func (s fakeSystem) LookPath(file string) (string, error) {
	if path, ok := s.paths[file]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (s fakeSystem) Getenv(key string) string {
	return s.env[key]
}

// fakeRunner records every invocation and replays scripted results.
type fakeRunner struct {
	commands []shell.Command
	queries  []shell.Command
	// runErrs maps Run call index (0-based) to a scripted error.
	runErrs map[int]error
	// output and outputErr script the next Output call.
	output    string
	outputErr error
}

func (r *fakeRunner) Run(c shell.Command) error {
	index := len(r.commands)
	r.commands = append(r.commands, c)
	return r.runErrs[index]
}

func (r *fakeRunner) Output(c shell.Command) (string, error) {
	r.queries = append(r.queries, c)
	return r.output, r.outputErr
}

// fakeFinder scripts privilege detection.
type fakeFinder struct {
	handle privilege.Handle
	ok     bool
}

func (f fakeFinder) Find() (privilege.Handle, bool) {
	return f.handle, f.ok
}

// allTools maps every supported executable to a plausible path.
func allTools() map[string]string {
	return map[string]string{
		"garuda-update": "/usr/bin/garuda-update",
		"paru":          "/usr/bin/paru",
		"yay":           "/usr/bin/yay",
		"trizen":        "/usr/bin/trizen",
		"pikaur":        "/usr/bin/pikaur",
		"pamac":         "/usr/bin/pamac",
		"pacman":        "/usr/bin/pacman",
		"aura":          "/usr/bin/aura",
	}
}

func testContext(runner *fakeRunner, sys fakeSystem, req Request) *Context {
	return &Context{
		Request:   req,
		Runner:    runner,
		System:    sys,
		Privilege: fakeFinder{},
	}
}

func equalArgs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
