package launcher_test

import (
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/notetool/internal/apperr"
	"github.com/go-ports/notetool/internal/launcher"
)

// fakeSpawner records invocations and returns the configured error per
// command name. Unlisted names succeed.
type fakeSpawner struct {
	errs  map[string]error
	calls []call
}

type call struct {
	name string
	args []string
}

func (f *fakeSpawner) Spawn(name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.errs[name]
}

func notFound(name string) error {
	return &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func newLauncher(goos string, sp *fakeSpawner) *launcher.Launcher {
	l := launcher.New("", "", sp, nil)
	l.GOOS = goos
	return l
}

const notePath = "/home/u/notes/meeting-notes.md"

// ---------------------------------------------------------------------------
// Open
// ---------------------------------------------------------------------------

func TestOpen_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("gui editor launches directly", func(c *qt.C) {
		sp := &fakeSpawner{}
		out, err := newLauncher("linux", sp).Open(notePath)
		c.Assert(err, qt.IsNil)
		c.Assert(out.State, qt.Equals, launcher.Launched)
		c.Assert(out.Stage, qt.Equals, launcher.StageGUI)
		c.Assert(sp.calls, qt.HasLen, 1)
		c.Assert(sp.calls[0].name, qt.Equals, "code")
		c.Assert(sp.calls[0].args, qt.DeepEquals, []string{notePath})
	})

	c.Run("gui not found falls back to primary shell", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{"code": notFound("code")}}
		out, err := newLauncher("linux", sp).Open(notePath)
		c.Assert(err, qt.IsNil)
		c.Assert(out.State, qt.Equals, launcher.Launched)
		c.Assert(out.Stage, qt.Equals, launcher.StagePrimaryShell)
		c.Assert(sp.calls, qt.HasLen, 2)
		c.Assert(sp.calls[1].name, qt.Equals, "zsh")
		c.Assert(sp.calls[1].args, qt.DeepEquals, []string{
			"-c", launcher.Platforms["linux"].Primary.Script, "notetool", notePath, "nano",
		})
	})

	c.Run("gui and primary shell not found reaches secondary shell", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{
			"code": notFound("code"),
			"zsh":  notFound("zsh"),
		}}
		out, err := newLauncher("linux", sp).Open(notePath)
		c.Assert(err, qt.IsNil)
		c.Assert(out.State, qt.Equals, launcher.Launched)
		c.Assert(out.Stage, qt.Equals, launcher.StageSecondaryShell)
		c.Assert(sp.calls, qt.HasLen, 3)
		c.Assert(sp.calls[2].name, qt.Equals, "bash")
		c.Assert(sp.calls[2].args[1], qt.Equals, launcher.Platforms["linux"].Secondary.Script)
		c.Assert(out.Attempts, qt.HasLen, 3)
	})

	c.Run("darwin uses its own terminal invocation", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{"code": notFound("code")}}
		out, err := newLauncher("darwin", sp).Open(notePath)
		c.Assert(err, qt.IsNil)
		c.Assert(out.Stage, qt.Equals, launcher.StagePrimaryShell)
		c.Assert(sp.calls[1].args[1], qt.Contains, `"Terminal"`)
	})

	c.Run("configured editors are used", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{"subl": notFound("subl")}}
		l := launcher.New("subl", "vim", sp, nil)
		l.GOOS = "linux"
		_, err := l.Open(notePath)
		c.Assert(err, qt.IsNil)
		c.Assert(sp.calls[0].name, qt.Equals, "subl")
		c.Assert(sp.calls[1].args[4], qt.Equals, "vim")
	})
}

func TestOpen_FailurePath(t *testing.T) {
	c := qt.New(t)

	c.Run("gui permission error is fatal without shell fallback", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{
			"code": &fs.PathError{Op: "fork/exec", Path: "/usr/bin/code", Err: fs.ErrPermission},
		}}
		out, err := newLauncher("linux", sp).Open(notePath)
		c.Assert(apperr.KindOf(err), qt.Equals, apperr.KindLaunch)
		c.Assert(errors.Is(err, fs.ErrPermission), qt.IsTrue)
		c.Assert(out.State, qt.Equals, launcher.Failed)
		c.Assert(sp.calls, qt.HasLen, 1)
	})

	c.Run("primary shell failing for another reason skips secondary", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{
			"code": notFound("code"),
			"zsh":  errors.New("resource temporarily unavailable"),
		}}
		out, err := newLauncher("linux", sp).Open(notePath)
		c.Assert(apperr.KindOf(err), qt.Equals, apperr.KindLaunch)
		c.Assert(out.State, qt.Equals, launcher.Failed)
		c.Assert(sp.calls, qt.HasLen, 2)
	})

	c.Run("every strategy not found exhausts the chain", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{
			"code": notFound("code"),
			"zsh":  notFound("zsh"),
			"bash": notFound("bash"),
		}}
		out, err := newLauncher("linux", sp).Open(notePath)
		c.Assert(apperr.KindOf(err), qt.Equals, apperr.KindLaunchExhausted)
		c.Assert(out.State, qt.Equals, launcher.Exhausted)
		c.Assert(sp.calls, qt.HasLen, 3)
		c.Assert(out.Attempts[2].Stage, qt.Equals, launcher.StageSecondaryShell)
	})

	c.Run("unknown platform is unsupported after gui not found", func(c *qt.C) {
		sp := &fakeSpawner{errs: map[string]error{"code": notFound("code")}}
		out, err := newLauncher("plan9", sp).Open(notePath)
		c.Assert(apperr.KindOf(err), qt.Equals, apperr.KindUnsupportedPlatform)
		c.Assert(out.State, qt.Equals, launcher.Unsupported)
		c.Assert(sp.calls, qt.HasLen, 1)
	})
}

// ---------------------------------------------------------------------------
// IsNotFound
// ---------------------------------------------------------------------------

func TestIsNotFound_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "exec lookup failure", err: notFound("code"), want: true},
		{name: "missing absolute path", err: &fs.PathError{Op: "fork/exec", Path: "/nope", Err: fs.ErrNotExist}, want: true},
		{name: "permission denied", err: &fs.PathError{Op: "fork/exec", Path: "/x", Err: fs.ErrPermission}, want: false},
		{name: "other error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(launcher.IsNotFound(tc.err), qt.Equals, tc.want)
		})
	}
}

func TestExecSpawner_MissingCommandIsNotFound(t *testing.T) {
	c := qt.New(t)

	err := launcher.ExecSpawner{}.Spawn("notetool-test-no-such-editor-binary", "x")
	c.Assert(err, qt.IsNotNil)
	c.Assert(launcher.IsNotFound(err), qt.IsTrue)
}

// ---------------------------------------------------------------------------
// Platforms
// ---------------------------------------------------------------------------

func TestPlatforms_Table(t *testing.T) {
	c := qt.New(t)

	for goos, p := range launcher.Platforms {
		c.Run(goos, func(c *qt.C) {
			c.Assert(p.Primary.Name, qt.Not(qt.Equals), p.Secondary.Name)
			for _, s := range []launcher.Shell{p.Primary, p.Secondary} {
				c.Assert(strings.Contains(s.Script, `"$1"`), qt.IsTrue)
				c.Assert(strings.Contains(s.Script, `"$2"`), qt.IsTrue)
			}
		})
	}
}

func TestShellArgs_PassesPathPositionally(t *testing.T) {
	c := qt.New(t)

	s := launcher.Shell{Name: "sh", Script: `echo "$1"`}
	args := s.Args("/tmp/it's a note.md", "nano")
	c.Assert(args, qt.DeepEquals, []string{"-c", `echo "$1"`, "notetool", "/tmp/it's a note.md", "nano"})
}
