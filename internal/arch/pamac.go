package arch

import (
	"fmt"

	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/shell"
)

// pamac drives Manjaro's pamac, whose dialect uses subcommands and
// --no-confirm rather than pacman-style flags.
type pamac struct {
	executable string
}

func (p *pamac) Upgrade(ctx *Context) error {
	args := []string{"upgrade"}
	args = append(args, splitArgs(ctx.Request.Args.Pamac)...)
	if ctx.Request.AssumeYes {
		args = append(args, "--no-confirm")
	}
	upgrade := shell.Command{Path: p.executable, Args: args, Env: execPathEnv(ctx.system())}
	if err := ctx.Runner.Run(upgrade); err != nil {
		return fmt.Errorf(messages.ArchUpgradeFailedFmt, Pamac, err)
	}

	if ctx.Request.Cleanup {
		args := []string{"clean"}
		if ctx.Request.AssumeYes {
			args = append(args, "--no-confirm")
		}
		if err := ctx.Runner.Run(shell.Command{Path: p.executable, Args: args}); err != nil {
			return fmt.Errorf(messages.ArchCleanupFailedFmt, Pamac, err)
		}
	}

	return nil
}
