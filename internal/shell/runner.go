// Package shell runs external commands to completion with per-invocation
// environment overrides and an exit-status whitelist.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/archup/archup/internal/messages"
)

// Command describes one blocking invocation of an external tool.
type Command struct {
	Path string
	Args []string
	// Env overrides individual variables of the inherited environment for
	// this invocation only. The parent process environment is never mutated.
	Env map[string]string
	// AcceptCodes lists non-zero exit codes treated as success.
	AcceptCodes []int
}

// Display renders the command line for error messages and dry-run output.
func (c Command) Display() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Runner executes commands. Run streams the child's stdio; Output captures
// decoded standard output instead.
type Runner interface {
	Run(cmd Command) error
	Output(cmd Command) (string, error)
}

// ExitError reports a child process that exited with an unaccepted status.
type ExitError struct {
	Path string
	Args []string
	Code int
}

func (e *ExitError) Error() string {
	display := Command{Path: e.Path, Args: e.Args}.Display()
	return fmt.Sprintf(messages.ShellExitFmt, display, e.Code)
}

// ExecRunner is the real Runner. Nil stdio fields default to the process
// standard streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command to completion, streaming stdio.
func (r ExecRunner) Run(c Command) error {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	cmd.Env = MergeEnv(os.Environ(), c.Env)
	return checkWaitError(c, cmd.Run())
}

// Output executes the command and returns its decoded standard output.
// Standard error still streams through so the tool's diagnostics stay visible.
func (r ExecRunner) Output(c Command) (string, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Stdin = r.stdin()
	cmd.Stderr = r.stderr()
	cmd.Env = MergeEnv(os.Environ(), c.Env)
	out, err := cmd.Output()
	if err := checkWaitError(c, err); err != nil {
		return "", fmt.Errorf(messages.ShellOutputFailFmt, c.Display(), err)
	}
	return string(out), nil
}

func (r ExecRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// checkWaitError maps a command result onto the accept-code whitelist.
func checkWaitError(c Command, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if Accepted(code, c.AcceptCodes) {
			return nil
		}
		return &ExitError{Path: c.Path, Args: c.Args, Code: code}
	}
	return fmt.Errorf(messages.ShellStartFailFmt, c.Display(), err)
}

// Accepted reports whether code is zero or whitelisted.
func Accepted(code int, accept []int) bool {
	if code == 0 {
		return true
	}
	for _, ok := range accept {
		if code == ok {
			return true
		}
	}
	return false
}

// MergeEnv overlays overrides onto a base KEY=VALUE environment. Overridden
// keys keep their position; new keys are appended in sorted order.
func MergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	used := make(map[string]bool, len(overrides))
	merged := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		key, _, found := strings.Cut(entry, "=")
		if value, ok := overrides[key]; found && ok {
			merged = append(merged, key+"="+value)
			used[key] = true
			continue
		}
		merged = append(merged, entry)
	}
	extra := make([]string, 0, len(overrides))
	for key, value := range overrides {
		if !used[key] {
			extra = append(extra, key+"="+value)
		}
	}
	sort.Strings(extra)
	return append(merged, extra...)
}

// DryRunner prints the commands Run would execute instead of running them.
// Output probes still delegate to Probe: read-only queries (such as a
// backend's --version) must return real data for dispatch decisions.
type DryRunner struct {
	Out   io.Writer
	Probe Runner
}

// Run prints the would-run line and reports success.
func (r DryRunner) Run(c Command) error {
	_, _ = fmt.Fprintf(r.Out, messages.ShellDryRunFmt, c.Display())
	return nil
}

// Output delegates to the probe runner.
func (r DryRunner) Output(c Command) (string, error) {
	return r.Probe.Output(c)
}
