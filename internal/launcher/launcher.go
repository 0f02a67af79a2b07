// Package launcher opens a note in an editor, falling back from a GUI editor to
// a terminal editor run inside a terminal emulator.
package launcher

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/go-ports/notetool/internal/apperr"
)

// Defaults used when the config leaves the editors unset.
const (
	DefaultGUIEditor      = "code"
	DefaultTerminalEditor = "nano"
)

// State is a position in the launch state machine.
type State string

const (
	NotAttempted State = "NotAttempted"
	GUIFailed    State = "GuiFailed"
	ShellAFailed State = "ShellAFailed"
	ShellBFailed State = "ShellBFailed"

	// Terminal states.
	Launched    State = "Launched"
	Unsupported State = "Unsupported"
	Exhausted   State = "ExhaustedFallbacks"
	Failed      State = "Failed"
)

// Stage names a launch strategy.
type Stage string

const (
	StageGUI            Stage = "gui"
	StagePrimaryShell   Stage = "primary-shell"
	StageSecondaryShell Stage = "secondary-shell"
)

// Attempt records a single spawn.
type Attempt struct {
	Stage Stage
	Name  string
	Args  []string
	Err   error
}

// Outcome is the result of Open. Stage is set only when State is Launched.
type Outcome struct {
	State    State
	Stage    Stage
	Attempts []Attempt
}

// Launcher runs the editor fallback chain.
type Launcher struct {
	GUIEditor      string
	TerminalEditor string
	// GOOS selects the platform strategy. Defaults to runtime.GOOS.
	GOOS string
	// Platforms defaults to the package-level table.
	Platforms map[string]Platform
	Spawner   Spawner
	Log       *zap.Logger
}

// New returns a Launcher for the current OS. Empty editor names fall back to
// DefaultGUIEditor and DefaultTerminalEditor; a nil spawner uses ExecSpawner.
func New(guiEditor, terminalEditor string, spawner Spawner, log *zap.Logger) *Launcher {
	if guiEditor == "" {
		guiEditor = DefaultGUIEditor
	}
	if terminalEditor == "" {
		terminalEditor = DefaultTerminalEditor
	}
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{
		GUIEditor:      guiEditor,
		TerminalEditor: terminalEditor,
		GOOS:           runtime.GOOS,
		Platforms:      Platforms,
		Spawner:        spawner,
		Log:            log,
	}
}

func (l *Launcher) logger() *zap.Logger {
	if l.Log == nil {
		return zap.NewNop()
	}
	return l.Log
}

func (l *Launcher) platform() (Platform, string, bool) {
	goos := l.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	table := l.Platforms
	if table == nil {
		table = Platforms
	}
	p, ok := table[goos]
	return p, goos, ok
}

// Open launches an editor on path and returns without waiting for it.
//
// A not-found failure moves on to the next strategy; any other spawn failure
// ends the chain immediately with a LaunchError.
func (l *Launcher) Open(path string) (Outcome, error) {
	out := Outcome{State: NotAttempted}
	log := l.logger()

	err := l.spawn(&out, StageGUI, l.GUIEditor, path)
	if err == nil {
		return l.launched(out, StageGUI), nil
	}
	if !IsNotFound(err) {
		out.State = Failed
		return out, apperr.Wrap(apperr.KindLaunch, err, "couldn't open %s with %s", path, l.GUIEditor)
	}
	out.State = GUIFailed
	log.Debug("gui editor not found, trying terminal editor", zap.String("editor", l.GUIEditor))

	p, goos, ok := l.platform()
	if !ok {
		out.State = Unsupported
		return out, apperr.New(apperr.KindUnsupportedPlatform, "%s not found and platform %q has no terminal fallback", l.GUIEditor, goos)
	}

	steps := []struct {
		stage  Stage
		shell  Shell
		failed State
	}{
		{StagePrimaryShell, p.Primary, ShellAFailed},
		{StageSecondaryShell, p.Secondary, ShellBFailed},
	}
	for _, s := range steps {
		err := l.spawn(&out, s.stage, s.shell.Name, s.shell.Args(path, l.TerminalEditor)...)
		if err == nil {
			return l.launched(out, s.stage), nil
		}
		if !IsNotFound(err) {
			out.State = Failed
			return out, apperr.Wrap(apperr.KindLaunch, err, "couldn't open %s via %s", path, s.shell.Name)
		}
		out.State = s.failed
		log.Debug("shell not found", zap.String("shell", s.shell.Name), zap.String("stage", string(s.stage)))
	}

	out.State = Exhausted
	return out, apperr.New(apperr.KindLaunchExhausted, "couldn't open %s: %s, %s and %s were not found",
		path, l.GUIEditor, p.Primary.Name, p.Secondary.Name)
}

func (l *Launcher) spawn(out *Outcome, stage Stage, name string, args ...string) error {
	spawner := l.Spawner
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	err := spawner.Spawn(name, args...)
	out.Attempts = append(out.Attempts, Attempt{Stage: stage, Name: name, Args: args, Err: err})
	l.logger().Debug("spawn", zap.String("stage", string(stage)), zap.String("cmd", name), zap.Strings("args", args), zap.Error(err))
	return err
}

func (l *Launcher) launched(out Outcome, stage Stage) Outcome {
	out.State = Launched
	out.Stage = stage
	l.logger().Debug("editor launched", zap.String("stage", string(stage)))
	return out
}
