package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ryanfowler/keyshell/internal/cli"
	"github.com/ryanfowler/keyshell/internal/config"
	"github.com/ryanfowler/keyshell/internal/core"
	"github.com/ryanfowler/keyshell/internal/line"
	"github.com/ryanfowler/keyshell/internal/logger"
	"github.com/ryanfowler/keyshell/internal/shell"
	"github.com/ryanfowler/keyshell/internal/token"
)

const (
	defaultPrompt      = "keyshell> "
	defaultHistorySize = 1000
)

var errNotTerminal = errors.New("stdin is not a terminal; pass a command to run instead")

func main() {
	// Cancel the context when one of the below signals are caught. Ctrl+C
	// is read as a key by the editor while a line is being entered.
	ctx, cancel := context.WithCancelCause(context.Background())
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		cancel(core.SignalError(sig.String()))
	}()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	// Parse the CLI args.
	app, err := cli.Parse(os.Args[1:])
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		writeCLIErr(p, err)
		return 1
	}

	// Parse any config file, and merge with it.
	err = parseConfigFile(app)
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		core.WriteErrorMsg(p, err)
		return 1
	}

	handle := core.NewHandle(app.Cfg.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		return 0
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "keyshell", core.Version)
		return 0
	}

	log, closeLog, err := logger.New(getValue(app.Cfg.LogLevel), getValue(app.Cfg.LogFile))
	if err != nil {
		msg := fmt.Sprintf("unable to open log file: %s", err.Error())
		core.WriteWarningMsg(handle.Stderr(), msg)
		log, closeLog, _ = logger.New(slog.LevelInfo, "")
	}
	defer closeLog()

	term := line.NewTerminal()
	ed := newEditor(term, &app.Cfg, log)
	sh := shell.New(ed, shell.Config{
		Stdout: handle.Stdout(),
		Stderr: handle.Stderr(),
		Logger: log,
	})

	// Run a single command when one is provided on the command line.
	if len(app.Command) > 0 {
		words := make([]string, 0, len(app.Command))
		for _, w := range app.Command {
			words = append(words, token.Quote(w))
		}
		err = sh.Exec(ctx, strings.Join(words, " "))
		if err != nil && !errors.Is(err, shell.ErrExit) {
			core.WriteErrorMsg(handle.Stderr(), err)
			return 1
		}
		return 0
	}

	if !term.IsTerminal() {
		core.WriteErrorMsg(handle.Stderr(), errNotTerminal)
		return 1
	}

	log.Info("shell started", "version", core.Version)
	if err := sh.Run(ctx); err != nil {
		core.WriteErrorMsg(handle.Stderr(), err)
		return 1
	}
	return 0
}

func newEditor(dev line.Device, cfg *config.Config, log *slog.Logger) *line.Editor {
	ed := line.NewEditor(dev)
	ed.Prompt = defaultPrompt
	if cfg.Prompt != nil {
		ed.Prompt = *cfg.Prompt
	}
	if cfg.Mask != nil {
		ed.Mask = *cfg.Mask
	}
	ed.Overwrite = getValue(cfg.Overwrite)

	size := defaultHistorySize
	if cfg.HistorySize != nil {
		size = *cfg.HistorySize
	}
	ed.History = line.NewHistory(size)
	ed.Logger = log
	return ed
}

// parse and merge any config file with the CLI app configuration.
func parseConfigFile(app *cli.App) error {
	file, err := config.GetFile(app.ConfigPath)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}
	app.Cfg.Merge(file.Config)
	return nil
}

func getValue[T any](v *T) T {
	if v == nil {
		var t T
		return t
	}
	return *v
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
