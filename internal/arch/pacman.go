package arch

import (
	"fmt"

	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/shell"
)

// pacman drives pacman (or powerpill) directly. The tool cannot upgrade the
// system unprivileged, so every invocation runs through the privilege handle.
type pacman struct {
	executable string
}

func (p *pacman) Upgrade(ctx *Context) error {
	handle, ok := ctx.privilegeHandle()
	if !ok {
		return fmt.Errorf(messages.PrivilegePacmanRequiredFmt, ErrPrivilegeUnavailable)
	}

	args := []string{"-Syu"}
	if ctx.Request.AssumeYes {
		args = append(args, "--noconfirm")
	}
	path, wrapped := handle.Wrap(p.executable, args)
	upgrade := shell.Command{Path: path, Args: wrapped, Env: execPathEnv(ctx.system())}
	if err := ctx.Runner.Run(upgrade); err != nil {
		return fmt.Errorf(messages.ArchUpgradeFailedFmt, Pacman, err)
	}

	if ctx.Request.Cleanup {
		args := []string{"-Scc"}
		if ctx.Request.AssumeYes {
			args = append(args, "--noconfirm")
		}
		path, wrapped := handle.Wrap(p.executable, args)
		if err := ctx.Runner.Run(shell.Command{Path: path, Args: wrapped}); err != nil {
			return fmt.Errorf(messages.ArchCleanupFailedFmt, Pacman, err)
		}
	}

	return nil
}
