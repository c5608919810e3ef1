package messages

// CLI help text and command output.
const (
	RootUse   = "archup"
	RootShort = "Upgrade an Arch Linux system through the installed pacman wrapper"
	RootLong  = "archup detects the installed pacman wrapper (garuda-update, paru, yay, trizen,\npikaur, pamac, pacman, or aura) and drives it through a full system upgrade."

	UpgradeUse   = "upgrade"
	UpgradeShort = "Sync package databases and upgrade all packages"

	UpgradeFlagBackend  = "package manager backend to use instead of autodetection"
	UpgradeFlagYes      = "suppress the backend's confirmation prompts"
	UpgradeFlagCleanup  = "clean the package cache after upgrading"
	UpgradeFlagShowNews = "show pending Arch news before upgrading (yay/paru only)"
	UpgradeFlagDryRun   = "print the commands that would run without executing them"
	UpgradeFlagConfig   = "path to the archup config file"

	UpgradeRequiresTerminal = "stdin is not a terminal; the selected backend may prompt interactively. Re-run with --yes or --dry-run"

	DoctorUse   = "doctor"
	DoctorShort = "Report which backends and privilege helpers are installed"

	DoctorBackendsHeader   = "Backends (in autodetection order):"
	DoctorBackendLineFmt   = "  %s %-13s %s\n"
	DoctorNotFound         = "not found"
	DoctorPrivilegeFmt     = "Privilege helper: %s\n"
	DoctorPrivilegeRoot    = "not needed (running as root)"
	DoctorPrivilegeMissing = "none found (pacman and old aura need sudo, doas, or run0)"

	VersionTemplate  = "archup {{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	PacnewHeader = "Pacman backup configuration files found:"
)
