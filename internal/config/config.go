// Package config loads the archup configuration file.
package config

import (
	"strings"

	"github.com/archup/archup/internal/arch"
)

// Config is the full archup configuration.
type Config struct {
	Upgrade UpgradeConfig `toml:"upgrade"`
	Args    ArgsConfig    `toml:"args"`
}

// UpgradeConfig controls backend selection and upgrade behavior.
type UpgradeConfig struct {
	// Backend is "autodetect" or one of the supported backend names.
	Backend   string `toml:"backend"`
	AssumeYes bool   `toml:"assume_yes"`
	Cleanup   bool   `toml:"cleanup"`
	ShowNews  bool   `toml:"show_news"`
}

// ArgsConfig holds per-backend extra arguments appended after each backend's
// mandatory flags. The yay key is shared by yay and paru.
type ArgsConfig struct {
	Yay          string `toml:"yay"`
	GarudaUpdate string `toml:"garuda_update"`
	Trizen       string `toml:"trizen"`
	Pikaur       string `toml:"pikaur"`
	Pamac        string `toml:"pamac"`
	AuraAUR      string `toml:"aura_aur"`
	AuraPacman   string `toml:"aura_pacman"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Upgrade: UpgradeConfig{Backend: arch.Autodetect},
	}
}

// Request converts the configuration into an upgrade request.
func (c *Config) Request() arch.Request {
	return arch.Request{
		Backend:   c.Upgrade.Backend,
		AssumeYes: c.Upgrade.AssumeYes,
		Cleanup:   c.Upgrade.Cleanup,
		ShowNews:  c.Upgrade.ShowNews,
		Args: arch.ExtraArgs{
			Yay:          c.Args.Yay,
			GarudaUpdate: c.Args.GarudaUpdate,
			Trizen:       c.Args.Trizen,
			Pikaur:       c.Args.Pikaur,
			Pamac:        c.Args.Pamac,
			AuraAUR:      c.Args.AuraAUR,
			AuraPacman:   c.Args.AuraPacman,
		},
	}
}

// normalizedBackend trims the configured backend selector.
func (c *Config) normalizedBackend() string {
	return strings.TrimSpace(c.Upgrade.Backend)
}
