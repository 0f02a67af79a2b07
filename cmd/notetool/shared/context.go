// Package shared holds the context passed to the notetool command.
package shared

import (
	"os"
	"time"

	"github.com/go-ports/notetool/internal/launcher"
)

// Context carries global CLI state (flags set on the root command) and the
// collaborators tests replace.
type Context struct {
	// ConfigPath overrides the config file location.
	// When empty, resolution falls through to ~/.config/notetool/config.{yaml,toml}.
	ConfigPath string
	Verbose    bool

	// Spawner starts editor processes. Nil spawns real processes.
	Spawner launcher.Spawner
	// GOOS overrides the platform used for terminal fallbacks.
	GOOS string
	// Now stamps the note date. Nil uses time.Now.
	Now func() time.Time
	// HomeDir locates the notes directory. Nil uses os.UserHomeDir.
	HomeDir func() (string, error)
}

// Clock returns the configured clock or time.Now.
func (c *Context) Clock() func() time.Time {
	if c.Now == nil {
		return time.Now
	}
	return c.Now
}

// Home returns the configured home lookup or os.UserHomeDir.
func (c *Context) Home() func() (string, error) {
	if c.HomeDir == nil {
		return os.UserHomeDir
	}
	return c.HomeDir
}
