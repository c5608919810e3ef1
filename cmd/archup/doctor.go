package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/archup/archup/internal/arch"
	"github.com/archup/archup/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(out, messages.DoctorBackendsHeader)
			for _, kind := range arch.Priority {
				status := color.GreenString("ok")
				detail, ok := arch.InstalledPath(upgradeSystem, kind)
				if !ok {
					status = color.RedString("--")
					detail = messages.DoctorNotFound
				}
				_, _ = fmt.Fprintf(out, messages.DoctorBackendLineFmt, status, kind, detail)
			}

			handle, ok := upgradePrivilege.Find()
			switch {
			case ok && handle.Direct:
				_, _ = fmt.Fprintf(out, messages.DoctorPrivilegeFmt, messages.DoctorPrivilegeRoot)
			case ok:
				_, _ = fmt.Fprintf(out, messages.DoctorPrivilegeFmt, handle.Path)
			default:
				_, _ = fmt.Fprintf(out, messages.DoctorPrivilegeFmt, color.YellowString(messages.DoctorPrivilegeMissing))
			}
			return nil
		},
	}
}
