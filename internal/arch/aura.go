package arch

import (
	"fmt"
	"strings"

	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/shell"
	"github.com/archup/archup/internal/version"
)

// auraVersionPrefix precedes the version token in `aura --version` output.
const auraVersionPrefix = "aura "

// auraNoSudoSince is the release at which aura stopped delegating to sudo.
// https://github.com/fosskers/aura/releases/tag/v4.0.6
var auraNoSudoSince = version.New(4, 0, 6)

// aura drives the aura AUR helper. Its privilege model changed in 4.0.6, so
// the installed version is queried at run time to pick a strategy; the
// version probe runs even in dry-run mode because the branch cannot be
// decided without it.
type aura struct {
	executable string
}

func (a *aura) Upgrade(ctx *Context) error {
	out, err := ctx.Runner.Output(shell.Command{Path: a.executable, Args: []string{"--version"}})
	if err != nil {
		return fmt.Errorf(messages.ArchVersionProbeFailedFmt, Aura, err)
	}
	installed, err := a.parseVersion(out)
	if err != nil {
		return err
	}

	aurArgs := append([]string{"-Au"}, splitArgs(ctx.Request.Args.AuraAUR)...)
	pacmanArgs := append([]string{"-Syu"}, splitArgs(ctx.Request.Args.AuraPacman)...)
	if ctx.Request.AssumeYes {
		aurArgs = append(aurArgs, "--noconfirm")
		pacmanArgs = append(pacmanArgs, "--noconfirm")
	}

	if installed.AtLeast(auraNoSudoSince) {
		if err := ctx.Runner.Run(shell.Command{Path: a.executable, Args: aurArgs}); err != nil {
			return fmt.Errorf(messages.ArchAURSyncFailedFmt, Aura, err)
		}
		if err := ctx.Runner.Run(shell.Command{Path: a.executable, Args: pacmanArgs}); err != nil {
			return fmt.Errorf(messages.ArchPacmanSyncFailedFmt, Aura, err)
		}
		return nil
	}

	handle, ok := ctx.privilegeHandle()
	if !ok {
		return fmt.Errorf(messages.PrivilegeOldAuraRequiredFmt, ErrPrivilegeUnavailable, auraNoSudoSince)
	}
	path, wrapped := handle.Wrap(a.executable, aurArgs)
	if err := ctx.Runner.Run(shell.Command{Path: path, Args: wrapped}); err != nil {
		return fmt.Errorf(messages.ArchAURSyncFailedFmt, Aura, err)
	}
	path, wrapped = handle.Wrap(a.executable, pacmanArgs)
	if err := ctx.Runner.Run(shell.Command{Path: path, Args: wrapped}); err != nil {
		return fmt.Errorf(messages.ArchPacmanSyncFailedFmt, Aura, err)
	}
	return nil
}

// parseVersion extracts the semantic version from `aura --version` output
// such as "aura 4.0.6\n". A malformed token is a hard error: the privilege
// branch must never be guessed.
func (a *aura) parseVersion(out string) (version.Version, error) {
	token := strings.TrimSpace(strings.TrimPrefix(out, auraVersionPrefix))
	if token == "" {
		return version.Version{}, fmt.Errorf(messages.ArchVersionQueryEmpty, ErrVersionQuery, a.executable)
	}
	installed, err := version.Parse(token)
	if err != nil {
		return version.Version{}, fmt.Errorf(messages.ArchVersionQueryFmt, ErrVersionQuery, token, a.executable)
	}
	return installed, nil
}
