// Package rootcmd wires the root cobra.Command for the notetool binary.
package rootcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-ports/notetool/cmd/notetool/shared"
	"github.com/go-ports/notetool/internal/apperr"
	"github.com/go-ports/notetool/internal/buildinfo"
	"github.com/go-ports/notetool/internal/config"
	"github.com/go-ports/notetool/internal/launcher"
	"github.com/go-ports/notetool/internal/logger"
	"github.com/go-ports/notetool/internal/note"
)

// Command implements `notetool <title>`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the root command with default collaborators.
func New() *cobra.Command {
	return NewWithContext(&shared.Context{})
}

// NewWithContext creates the root command using ctx for flags and
// collaborators.
func NewWithContext(ctx *shared.Context) *cobra.Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:           "notetool <title>",
		Short:         "Create a dated markdown note in ~/notes and open it in an editor",
		Version:       buildinfo.String(),
		Args:          titleArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&ctx.ConfigPath, "config", "",
		"Config file (default: ~/.config/notetool/config.yaml, or config.toml)")
	f.BoolVarP(&ctx.Verbose, "verbose", "v", false, "Log each editor launch attempt to stderr")

	return c.cmd
}

// titleArg requires exactly one positional title.
func titleArg(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return apperr.New(apperr.KindMissingArgument, "please provide a note title")
	case 1:
		return nil
	default:
		return apperr.New(apperr.KindInvalidArgument,
			"expected a single title, got %d arguments (quote titles that contain spaces)", len(args))
	}
}

func (c *Command) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadResolved(c.ctx.ConfigPath)
	if err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel, c.ctx.Verbose)
	defer func() { _ = log.Sync() }()

	req, err := note.NewRequest(args[0], c.ctx.Clock()())
	if err != nil {
		return err
	}

	resolver := &note.Resolver{HomeDir: c.ctx.Home(), Log: log}
	if err := resolver.ResolveRequest(req); err != nil {
		return err
	}
	if err := note.CreateRequest(req); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", req.Path)

	l := launcher.New(cfg.GUIEditor, cfg.TerminalEditor, c.ctx.Spawner, log)
	if c.ctx.GOOS != "" {
		l.GOOS = c.ctx.GOOS
	}
	out, err := l.Open(req.Path)
	if err != nil {
		return err
	}
	log.Debug("note opened", zap.String("path", req.Path), zap.String("stage", string(out.Stage)))
	return nil
}
