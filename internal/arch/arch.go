// Package arch selects an installed Arch Linux package manager and drives it
// through a full system upgrade. Each supported wrapper encodes its own flag
// dialect, confirmation mechanism, privilege needs, and optional cache
// cleanup behind the shared PackageManager interface.
package arch

import (
	"errors"

	"github.com/archup/archup/internal/messages"
)

// PackageManager is the uniform contract every backend satisfies. Upgrade
// runs the backend's external tool to completion; on failure the error
// identifies the sub-step that failed.
type PackageManager interface {
	Upgrade(ctx *Context) error
}

// Kind identifies one concrete backend. The set is closed: archup dispatches
// over these tags and nothing else.
type Kind string

// Supported backends.
const (
	GarudaUpdate Kind = "garuda-update"
	Paru         Kind = "paru"
	Yay          Kind = "yay"
	Trizen       Kind = "trizen"
	Pikaur       Kind = "pikaur"
	Pamac        Kind = "pamac"
	Pacman       Kind = "pacman"
	Aura         Kind = "aura"
)

// Autodetect selects the first installed backend in Priority order.
const Autodetect = "autodetect"

// Priority is the autodetection order. It is a policy decision, not
// user-configurable beyond forcing a single backend.
var Priority = []Kind{GarudaUpdate, Paru, Yay, Trizen, Pikaur, Pamac, Pacman, Aura}

// ParseKind maps a backend name onto its Kind.
func ParseKind(raw string) (Kind, bool) {
	for _, kind := range Priority {
		if raw == string(kind) {
			return kind, true
		}
	}
	return "", false
}

// KindNames returns the backend names in priority order.
func KindNames() []string {
	names := make([]string, 0, len(Priority))
	for _, kind := range Priority {
		names = append(names, string(kind))
	}
	return names
}

// ErrBackendUnavailable, ErrPrivilegeUnavailable, and ErrVersionQuery
// classify the failure modes callers can act on.
var (
	ErrBackendUnavailable   = errors.New(messages.ArchNoBackend)
	ErrPrivilegeUnavailable = errors.New(messages.PrivilegeRequired)
	ErrVersionQuery         = errors.New(messages.ArchVersionQueryMalformed)
)

// Upgrade resolves the requested backend and runs its upgrade protocol.
// This is the sole entry point the CLI calls; errors from resolution and
// from the backend propagate unchanged.
func Upgrade(ctx *Context) error {
	backend, err := Resolve(ctx)
	if err != nil {
		return err
	}
	return backend.Upgrade(ctx)
}
