package arch

import (
	"fmt"

	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/shell"
)

type trizen struct {
	executable string
}

func (t *trizen) Upgrade(ctx *Context) error {
	args := []string{"-Syu"}
	args = append(args, splitArgs(ctx.Request.Args.Trizen)...)
	if ctx.Request.AssumeYes {
		args = append(args, "--noconfirm")
	}
	upgrade := shell.Command{Path: t.executable, Args: args, Env: execPathEnv(ctx.system())}
	if err := ctx.Runner.Run(upgrade); err != nil {
		return fmt.Errorf(messages.ArchUpgradeFailedFmt, Trizen, err)
	}

	if ctx.Request.Cleanup {
		args := []string{"-Sc"}
		if ctx.Request.AssumeYes {
			args = append(args, "--noconfirm")
		}
		if err := ctx.Runner.Run(shell.Command{Path: t.executable, Args: args}); err != nil {
			return fmt.Errorf(messages.ArchCleanupFailedFmt, Trizen, err)
		}
	}

	return nil
}
