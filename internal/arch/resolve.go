package arch

import (
	"fmt"
	"strings"

	"github.com/archup/archup/internal/messages"
)

// Resolve picks the backend for the request: the forced backend when one is
// named, otherwise the first installed backend in Priority order. When
// nothing usable is found it returns ErrBackendUnavailable.
func Resolve(ctx *Context) (PackageManager, error) {
	selector := strings.TrimSpace(ctx.Request.Backend)
	if selector == "" || selector == Autodetect {
		for _, kind := range Priority {
			if backend, ok := detect(ctx, kind); ok {
				return backend, nil
			}
		}
		return nil, ErrBackendUnavailable
	}

	kind, ok := ParseKind(selector)
	if !ok {
		return nil, fmt.Errorf(messages.ArchUnknownBackendFmt, selector)
	}
	backend, found := detect(ctx, kind)
	if !found {
		return nil, fmt.Errorf(messages.ArchForcedBackendMissingFmt, ErrBackendUnavailable, kind)
	}
	return backend, nil
}

// InstalledPath reports where kind's executable lives, when installed.
func InstalledPath(sys System, kind Kind) (string, bool) {
	switch kind {
	case Pacman:
		return pacmanExecutable(sys)
	case GarudaUpdate, Paru, Yay, Trizen, Pikaur, Pamac, Aura:
		if path, err := sys.LookPath(string(kind)); err == nil {
			return path, true
		}
	}
	return "", false
}

// detect probes for one backend and constructs it when its tool is installed.
func detect(ctx *Context, kind Kind) (PackageManager, bool) {
	sys := ctx.system()
	path, ok := InstalledPath(sys, kind)
	if !ok {
		return nil, false
	}
	switch kind {
	case GarudaUpdate:
		return &garudaUpdate{executable: path}, true
	case Paru, Yay:
		return &yayParu{name: string(kind), executable: path, pacman: pacmanDelegate(sys)}, true
	case Trizen:
		return &trizen{executable: path}, true
	case Pikaur:
		return &pikaur{executable: path}, true
	case Pamac:
		return &pamac{executable: path}, true
	case Pacman:
		return &pacman{executable: path}, true
	case Aura:
		return &aura{executable: path}, true
	}
	return nil, false
}

// pacmanDelegate returns the low-level tool yay and paru should drive:
// powerpill when installed, otherwise plain pacman.
func pacmanDelegate(sys System) string {
	if path, err := sys.LookPath("powerpill"); err == nil {
		return path
	}
	return "pacman"
}

// pacmanExecutable resolves the pacman backend's own executable, preferring
// powerpill. Unlike the delegate, detection fails when neither is installed.
func pacmanExecutable(sys System) (string, bool) {
	if path, err := sys.LookPath("powerpill"); err == nil {
		return path, true
	}
	if path, err := sys.LookPath("pacman"); err == nil {
		return path, true
	}
	return "", false
}
