package launcher

import (
	"errors"
	"io/fs"
	"os/exec"
)

// Spawner starts an external process and does not wait for it to exit.
type Spawner interface {
	// Spawn starts name with args. It returns once the process has been
	// started or has failed to start.
	Spawn(name string, args ...string) error
}

// ExecSpawner spawns real processes via os/exec.
type ExecSpawner struct{}

// Spawn starts the command detached from notetool's standard streams and
// releases it without waiting.
func (ExecSpawner) Spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...) // #nosec G204 -- editor and shell names come from the platform table or the user's own config
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// IsNotFound reports whether err means the command does not exist, which is
// the only failure that moves the launcher on to the next strategy.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
