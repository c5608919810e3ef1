package arch

import (
	"fmt"

	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/shell"
)

type pikaur struct {
	executable string
}

func (p *pikaur) Upgrade(ctx *Context) error {
	args := []string{"-Syu"}
	args = append(args, splitArgs(ctx.Request.Args.Pikaur)...)
	if ctx.Request.AssumeYes {
		args = append(args, "--noconfirm")
	}
	upgrade := shell.Command{Path: p.executable, Args: args, Env: execPathEnv(ctx.system())}
	if err := ctx.Runner.Run(upgrade); err != nil {
		return fmt.Errorf(messages.ArchUpgradeFailedFmt, Pikaur, err)
	}

	if ctx.Request.Cleanup {
		args := []string{"-Sc"}
		if ctx.Request.AssumeYes {
			args = append(args, "--noconfirm")
		}
		if err := ctx.Runner.Run(shell.Command{Path: p.executable, Args: args}); err != nil {
			return fmt.Errorf(messages.ArchCleanupFailedFmt, Pikaur, err)
		}
	}

	return nil
}
