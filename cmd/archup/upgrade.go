package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/archup/archup/internal/arch"
	"github.com/archup/archup/internal/config"
	"github.com/archup/archup/internal/messages"
	"github.com/archup/archup/internal/privilege"
	"github.com/archup/archup/internal/shell"
)

// Seams for tests.
var (
	upgradeSystem    arch.System      = arch.RealSystem{}
	upgradePrivilege privilege.Finder = privilege.Detector{}
	isTerminalFunc                    = isTerminal
	pacnewRoot                        = "/etc"
)

const flagBackend = "backend"

func newUpgradeCmd() *cobra.Command {
	var (
		backendName string
		assumeYes   bool
		cleanup     bool
		showNews    bool
		dryRun      bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			req := cfg.Request()
			if cmd.Flags().Changed(flagBackend) {
				req.Backend = backendName
			}
			if assumeYes {
				req.AssumeYes = true
			}
			if cleanup {
				req.Cleanup = true
			}
			if showNews {
				req.ShowNews = true
			}

			if !req.AssumeYes && !dryRun && !isTerminalFunc() {
				return fmt.Errorf(messages.UpgradeRequiresTerminal)
			}

			ctx := &arch.Context{
				Request:   req,
				Runner:    newRunner(dryRun, cmd.OutOrStdout()),
				System:    upgradeSystem,
				Privilege: upgradePrivilege,
			}
			upgradeErr := arch.Upgrade(ctx)

			// The leftover-config scan is independent of the upgrade outcome.
			arch.ReportLeftoverConfigs(pacnewRoot, cmd.OutOrStdout())

			return upgradeErr
		},
	}

	cmd.Flags().StringVar(&backendName, flagBackend, "", messages.UpgradeFlagBackend)
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, messages.UpgradeFlagYes)
	cmd.Flags().BoolVar(&cleanup, "cleanup", false, messages.UpgradeFlagCleanup)
	cmd.Flags().BoolVar(&showNews, "show-news", false, messages.UpgradeFlagShowNews)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, messages.UpgradeFlagDryRun)
	cmd.Flags().StringVar(&configPath, "config", "", messages.UpgradeFlagConfig)
	return cmd
}

// loadConfig reads the config from the explicit path or the default location.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	defaultPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(defaultPath)
}

// newRunner builds the execution facility for one dispatch: real blocking
// execution, or a dry-run printer whose read-only probes still execute.
func newRunner(dryRun bool, out io.Writer) shell.Runner {
	if dryRun {
		return shell.DryRunner{Out: out, Probe: shell.ExecRunner{}}
	}
	return shell.ExecRunner{}
}
