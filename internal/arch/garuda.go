package arch

import (
	"fmt"

	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/shell"
)

// garudaUpdate drives Garuda Linux's update wrapper. It has no separate
// sync/cleanup flags; behavior is steered entirely through the environment.
type garudaUpdate struct {
	executable string
}

func (g *garudaUpdate) Upgrade(ctx *Context) error {
	env := execPathEnv(ctx.system())
	env["UPDATE_AUR"] = "1"
	env["SKIP_MIRRORLIST"] = "1"
	if ctx.Request.AssumeYes {
		env["PACMAN_NOCONFIRM"] = "1"
	}

	cmd := shell.Command{
		Path: g.executable,
		Args: splitArgs(ctx.Request.Args.GarudaUpdate),
		Env:  env,
	}
	if err := ctx.Runner.Run(cmd); err != nil {
		return fmt.Errorf(messages.ArchUpgradeFailedFmt, GarudaUpdate, err)
	}
	return nil
}
