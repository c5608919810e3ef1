package messages

// System messages for internal operations.
const (
	// ArchNoBackend indicates no supported package manager was detected.
	ArchNoBackend = "no supported Arch Linux package manager found; install one of garuda-update, paru, yay, trizen, pikaur, pamac, pacman, or aura"
	// ArchForcedBackendMissingFmt reports a forced backend that is not installed.
	ArchForcedBackendMissingFmt = "%w: %s is not installed"
	ArchUnknownBackendFmt       = "unknown package manager %q"
	ArchUpgradeFailedFmt        = "%s: upgrade: %w"
	ArchCleanupFailedFmt        = "%s: cache cleanup: %w"
	ArchNewsFailedFmt           = "%s: news check: %w"
	ArchAURSyncFailedFmt        = "%s: AUR sync: %w"
	ArchPacmanSyncFailedFmt     = "%s: pacman sync: %w"
	ArchVersionProbeFailedFmt   = "%s: version query: %w"

	// PrivilegeRequired indicates escalation is needed but no helper exists.
	PrivilegeRequired           = "a privilege escalation helper is required"
	PrivilegePacmanRequiredFmt  = "%w: pacman cannot upgrade the system unprivileged; install sudo, doas, or run0"
	PrivilegeOldAuraRequiredFmt = "%w: aura before %s delegates to sudo for AUR packages; install sudo, doas, or run0"
	ArchVersionQueryMalformed   = "unexpected aura version output"
	ArchVersionQueryFmt         = "%w: %q from `%s --version`"
	ArchVersionQueryEmpty       = "%w: `%s --version` produced no version token"

	// ShellExitFmt formats a subprocess exit failure.
	ShellExitFmt       = "%s exited with status %d"
	ShellStartFailFmt  = "run %s: %w"
	ShellOutputFailFmt = "read output of %s: %w"
	ShellDryRunFmt     = "would run: %s\n"

	// ConfigMissingFileFmt formats config read failures.
	ConfigMissingFileFmt      = "failed to read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "unrecognized keys in %s: %w"
	ConfigInvalidBackendFmt   = "%s: upgrade.backend must be %q or one of %s, got %q"
	ConfigResolveHomeFmt      = "resolve home directory: %w"

	// VersionInvalidFmt formats semantic version parse failures.
	VersionInvalidFmt        = "invalid semantic version %q"
	VersionInvalidSegmentFmt = "invalid semantic version %q: segment %q is not a number"
)
