package arch

import (
	"fmt"

	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/shell"
)

// yayParu drives the yay and paru AUR helpers. The two share an argument
// dialect and delegate low-level operations to pacman (or powerpill) through
// their --pacman flag.
type yayParu struct {
	name       string
	executable string
	pacman     string
}

func (p *yayParu) Upgrade(ctx *Context) error {
	if ctx.Request.ShowNews {
		news := shell.Command{
			Path: p.executable,
			Args: []string{"-Pw"},
			// Exit code 1 is how yay and paru report "no unread news".
			AcceptCodes: []int{1},
		}
		if err := ctx.Runner.Run(news); err != nil {
			return fmt.Errorf(messages.ArchNewsFailedFmt, p.name, err)
		}
	}

	args := []string{"--pacman", p.pacman, "-Syu"}
	args = append(args, splitArgs(ctx.Request.Args.Yay)...)
	if ctx.Request.AssumeYes {
		args = append(args, "--noconfirm")
	}
	upgrade := shell.Command{Path: p.executable, Args: args, Env: execPathEnv(ctx.system())}
	if err := ctx.Runner.Run(upgrade); err != nil {
		return fmt.Errorf(messages.ArchUpgradeFailedFmt, p.name, err)
	}

	if ctx.Request.Cleanup {
		args := []string{"--pacman", p.pacman, "-Scc"}
		if ctx.Request.AssumeYes {
			args = append(args, "--noconfirm")
		}
		if err := ctx.Runner.Run(shell.Command{Path: p.executable, Args: args}); err != nil {
			return fmt.Errorf(messages.ArchCleanupFailedFmt, p.name, err)
		}
	}

	return nil
}
