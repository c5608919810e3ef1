package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archup/archup/internal/shell"
)

func withExecuteFunc(t *testing.T, fn func([]string, io.Writer, io.Writer) error) {
	t.Helper()
	orig := executeFunc
	executeFunc = fn
	t.Cleanup(func() { executeFunc = orig })
}

func TestRunMainSuccess(t *testing.T) {
	withExecuteFunc(t, func([]string, io.Writer, io.Writer) error { return nil })

	exited := false
	runMain([]string{"archup"}, io.Discard, io.Discard, func(int) { exited = true })
	require.False(t, exited)
}

func TestRunMainPropagatesChildExitCode(t *testing.T) {
	withExecuteFunc(t, func([]string, io.Writer, io.Writer) error {
		return &shell.ExitError{Path: "/usr/bin/pacman", Args: []string{"-Syu"}, Code: 4}
	})

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"archup"}, io.Discard, &stderr, func(c int) { code = c })
	require.Equal(t, 4, code)
	require.Contains(t, stderr.String(), "exited with status 4")
}

func TestRunMainGenericErrorExitsOne(t *testing.T) {
	withExecuteFunc(t, func([]string, io.Writer, io.Writer) error {
		return errors.New("boom")
	})

	var stderr bytes.Buffer
	code := -1
	runMain([]string{"archup"}, io.Discard, &stderr, func(c int) { code = c })
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "boom")
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	Version, Commit, BuildDate = "1.2.0", "unknown", "unknown"
	require.Equal(t, "1.2.0", versionString())

	Commit = "abc1234"
	require.Equal(t, "1.2.0 (commit abc1234)", versionString())

	BuildDate = "2026-08-30"
	require.Equal(t, "1.2.0 (commit abc1234, built 2026-08-30)", versionString())
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")
	require.NoError(t, err)
	require.Contains(t, stdout, "archup ")
}
