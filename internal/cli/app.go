package cli

import (
	"github.com/ryanfowler/keyshell/internal/config"
	"github.com/ryanfowler/keyshell/internal/core"
)

// App represents the full configuration for a keyshell invocation.
type App struct {
	// Command holds the words of a single command to run instead of
	// starting the interactive shell.
	Command []string

	Cfg config.Config

	ConfigPath string
	Help       bool
	Version    bool
}

// Parse parses the command line arguments, excluding the program name. The
// returned App is never nil, so its color setting can be used to report err.
func Parse(args []string) (*App, error) {
	var app App
	err := parse(app.CLI(), args)
	return &app, err
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

func (a *App) CLI() *CLI {
	return &CLI{
		Name:        "keyshell",
		Description: "keyshell is an interactive shell for password repositories",
		Args: []Arguments{
			{Name: "COMMAND", Description: "Run a single command and exit"},
		},
		ArgFn: func(s string) error {
			if s == "--" && len(a.Command) == 0 {
				return nil
			}
			a.Command = append(a.Command, s)
			return nil
		},
		ExclusiveFlags: [][]string{
			{"help", "version"},
		},
		Flags: []Flag{
			cfgFlag("color", "", "OPTION", "Enable/disable color",
				func() bool { return a.Cfg.Color != core.ColorUnknown },
				a.Cfg.ParseColor,
			).WithAliases("colour").WithValues("auto", "off", "on").WithDefault("auto"),
			stringFlag(&a.ConfigPath, "config", "", "PATH", "Path to config file"),
			boolFlag(&a.Help, "help", "h", "Print help"),
			cfgFlag("history-size", "", "N", "Maximum number of history entries",
				func() bool { return a.Cfg.HistorySize != nil },
				a.Cfg.ParseHistorySize,
			).WithDefault("1000"),
			cfgFlag("log-file", "", "PATH", "Write debug logs to a file ('-' for stderr)",
				func() bool { return a.Cfg.LogFile != nil },
				a.Cfg.ParseLogFile,
			),
			cfgFlag("log-level", "", "LEVEL", "Minimum level to log",
				func() bool { return a.Cfg.LogLevel != nil },
				a.Cfg.ParseLogLevel,
			).WithValues("debug", "info", "warn", "error").WithDefault("info"),
			cfgFlag("mask", "m", "CHAR", "Character echoed for secret input",
				func() bool { return a.Cfg.Mask != nil },
				a.Cfg.ParseMask,
			).WithDefault("*"),
			ptrBoolFlag(&a.Cfg.Overwrite, "overwrite", "o", "Start lines in overwrite mode"),
			cfgFlag("prompt", "p", "TEXT", "Prompt shown before each line",
				func() bool { return a.Cfg.Prompt != nil },
				a.Cfg.ParsePrompt,
			).WithDefault("'keyshell> '"),
			boolFlag(&a.Version, "version", "V", "Print version"),
		},
	}
}
