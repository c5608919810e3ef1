package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archup/archup/internal/privilege"
)

func TestDoctorReportsInstalledBackends(t *testing.T) {
	withSeams(t, fakeSystem{paths: map[string]string{
		"yay":  "/usr/bin/yay",
		"aura": "/usr/bin/aura",
		"sudo": "/usr/bin/sudo",
	}}, fakeFinder{handle: privilege.Handle{Path: "/usr/bin/sudo"}, ok: true}, true)

	stdout, _, err := runCLI(t, "doctor")
	require.NoError(t, err)
	require.Contains(t, stdout, "Backends (in autodetection order):")
	require.Contains(t, stdout, "/usr/bin/yay")
	require.Contains(t, stdout, "/usr/bin/aura")
	require.Contains(t, stdout, "not found")
	require.Contains(t, stdout, "Privilege helper: /usr/bin/sudo")
}

func TestDoctorRunningAsRoot(t *testing.T) {
	withSeams(t, fakeSystem{}, fakeFinder{handle: privilege.Handle{Direct: true}, ok: true}, true)

	stdout, _, err := runCLI(t, "doctor")
	require.NoError(t, err)
	require.Contains(t, stdout, "not needed (running as root)")
}

func TestDoctorNoPrivilegeHelper(t *testing.T) {
	withSeams(t, fakeSystem{}, fakeFinder{}, true)

	stdout, _, err := runCLI(t, "doctor")
	require.NoError(t, err)
	require.Contains(t, stdout, "none found")
}
