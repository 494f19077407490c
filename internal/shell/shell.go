// Package shell implements the interactive read-eval loop of keyshell.
package shell

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/ryanfowler/keyshell/internal/commands"
	"github.com/ryanfowler/keyshell/internal/complete"
	"github.com/ryanfowler/keyshell/internal/core"
	"github.com/ryanfowler/keyshell/internal/line"
	"github.com/ryanfowler/keyshell/internal/secret"
	"github.com/ryanfowler/keyshell/internal/token"
)

// ErrExit is returned by Exec when the line asked the shell to stop.
var ErrExit = errors.New("exit")

// Handler runs a command with its unquoted arguments.
type Handler func(ctx context.Context, args []string) error

// Config configures a Shell.
type Config struct {
	// Catalog lists the known commands. Defaults to commands.Default().
	Catalog *commands.Catalog

	// Accounts lists the account names used to complete account arguments.
	Accounts func() ([]string, error)

	// SetMasterPassword receives a confirmed new master password. The
	// secret is released once it returns.
	SetMasterPassword func(ctx context.Context, password *secret.Secret) error

	Stdout *core.Printer
	Stderr *core.Printer
	Logger *slog.Logger

	// Cols returns the terminal width used to lay out help output.
	// Defaults to core.GetTerminalCols.
	Cols func() int
}

// Shell reads command lines from an Editor and dispatches them.
type Shell struct {
	editor   *line.Editor
	catalog  *commands.Catalog
	history  *line.History
	handlers map[string]Handler

	setMasterPassword func(ctx context.Context, password *secret.Secret) error

	stdout *core.Printer
	stderr *core.Printer
	log    *slog.Logger
	cols   func() int
}

// New returns a Shell reading from ed. It installs a completer on the
// editor and, if ed has no History, an unlimited one.
func New(ed *line.Editor, cfg Config) *Shell {
	if cfg.Catalog == nil {
		cfg.Catalog = commands.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Cols == nil {
		cfg.Cols = core.GetTerminalCols
	}
	if ed.History == nil {
		ed.History = line.NewHistory(0)
	}
	if ed.Logger == nil {
		ed.Logger = cfg.Logger
	}

	provider := &complete.Provider{
		Catalog:  cfg.Catalog,
		Accounts: cfg.Accounts,
		Logger:   cfg.Logger,
	}
	ed.Completer = provider.Complete

	s := &Shell{
		editor:            ed,
		catalog:           cfg.Catalog,
		history:           ed.History,
		setMasterPassword: cfg.SetMasterPassword,
		stdout:            cfg.Stdout,
		stderr:            cfg.Stderr,
		log:               cfg.Logger,
		cols:              cfg.Cols,
	}
	s.handlers = map[string]Handler{
		"clear-history":       s.clearHistory,
		"exit":                s.exit,
		"help":                s.help,
		"history":             s.showHistory,
		"set-master-password": s.changeMasterPassword,
	}
	return s
}

// Handle registers h for the catalog command name. It panics if the catalog
// has no such command.
func (s *Shell) Handle(name string, h Handler) {
	cmd, ok := s.catalog.Lookup(name)
	if !ok {
		panic("shell: unknown command " + name)
	}
	s.handlers[cmd.Name] = h
}

// Run reads and executes lines until the user exits, sends EOF on an empty
// line, or ctx is done. Ctrl+C abandons only the line being edited.
func (s *Shell) Run(ctx context.Context) error {
	for {
		text, err := s.editor.ReadLine(ctx, false, "")
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, line.ErrInterrupted):
			continue
		case err != nil:
			return err
		}

		err = s.Exec(ctx, text)
		switch {
		case err == nil:
		case errors.Is(err, ErrExit):
			return nil
		case errors.Is(err, line.ErrInterrupted):
		case ctx.Err() != nil:
			return context.Cause(ctx)
		default:
			core.WriteErrorMsg(s.stderr, err)
		}
	}
}

// Exec tokenizes text and runs the command it names. Blank lines are
// ignored.
func (s *Shell) Exec(ctx context.Context, text string) error {
	tokens := token.Parse(text)
	if len(tokens) == 0 {
		return nil
	}

	name := tokens[0].Text
	cmd, ok := s.catalog.Lookup(name)
	if !ok {
		return unknownCommandError(name)
	}

	args := make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		args = append(args, tok.Text)
	}
	if err := checkArgs(cmd, args); err != nil {
		return err
	}

	h, ok := s.handlers[cmd.Name]
	if !ok {
		return notAvailableError(cmd.Name)
	}

	s.log.Debug("exec", "command", cmd.Name, "args", len(args))
	return h(ctx, args)
}

func checkArgs(cmd *commands.Command, args []string) error {
	if len(args) > len(cmd.Args) {
		return &usageError{cmd: cmd, msg: "too many arguments"}
	}
	for i := len(args); i < len(cmd.Args); i++ {
		if !cmd.Args[i].Optional {
			return &usageError{cmd: cmd, msg: "missing argument '" + cmd.Args[i].Name + "'"}
		}
	}
	for i, arg := range args {
		spec := cmd.Args[i]
		if spec.Kind == commands.KindChoice && !slices.Contains(spec.Values, arg) {
			return &usageError{cmd: cmd, msg: "invalid " + spec.Name + " '" + arg + "'"}
		}
	}
	return nil
}
