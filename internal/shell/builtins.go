package shell

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ryanfowler/keyshell/internal/commands"
	"github.com/ryanfowler/keyshell/internal/core"
	"github.com/ryanfowler/keyshell/internal/secret"

	"github.com/mattn/go-runewidth"
)

const helpIndent = "  "

func (s *Shell) help(_ context.Context, args []string) error {
	if len(args) == 1 {
		cmd, ok := s.catalog.Lookup(args[0])
		if !ok {
			return unknownCommandError(args[0])
		}
		s.printUsage(cmd)
		return nil
	}
	s.printCommands()
	return nil
}

// printCommands writes one row per command: its usage, padded to a shared
// column, followed by its summary truncated to the terminal width.
func (s *Shell) printCommands() {
	p := s.stdout
	cmds := s.catalog.Commands()

	var width int
	for _, cmd := range cmds {
		width = max(width, runewidth.StringWidth(cmd.Usage()))
	}
	avail := s.cols() - len(helpIndent) - width - 2

	p.Set(core.Bold, core.Underline)
	p.WriteString("Commands")
	p.Reset()
	p.WriteString(":\n")

	for _, cmd := range cmds {
		usage := cmd.Usage()
		p.WriteString(helpIndent)
		p.Set(core.Bold)
		p.WriteString(usage)
		p.Reset()

		summary := cmd.Summary
		if avail > 0 {
			summary = runewidth.Truncate(summary, avail, "…")
		}
		if summary != "" {
			p.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(usage)+2))
			p.WriteString(summary)
		}
		p.WriteString("\n")
	}

	p.WriteString("\nType '")
	p.Set(core.Bold)
	p.WriteString("help <command>")
	p.Reset()
	p.WriteString("' for the usage of a command.\n")
	p.Flush()
}

func (s *Shell) printUsage(cmd *commands.Command) {
	p := s.stdout

	p.Set(core.Bold, core.Underline)
	p.WriteString("Usage")
	p.Reset()
	p.WriteString(": ")
	p.Set(core.Bold)
	p.WriteString(cmd.Usage())
	p.Reset()
	p.WriteString("\n")

	if cmd.Summary != "" {
		p.WriteString("\n")
		p.WriteString(cmd.Summary)
		p.WriteString("\n")
	}

	if len(cmd.Aliases) > 0 {
		p.WriteString("\nAliases: ")
		p.WriteString(strings.Join(cmd.Aliases, ", "))
		p.WriteString("\n")
	}
	for _, arg := range cmd.Args {
		if len(arg.Values) == 0 {
			continue
		}
		p.WriteString("\nValues for ")
		p.Set(core.Bold)
		p.WriteString(arg.Name)
		p.Reset()
		p.WriteString(": ")
		p.WriteString(strings.Join(arg.Values, ", "))
		p.WriteString("\n")
	}
	p.Flush()
}

func (s *Shell) showHistory(context.Context, []string) error {
	entries := s.history.Entries()
	digits := len(strconv.Itoa(len(entries)))

	p := s.stdout
	for i, entry := range entries {
		n := strconv.Itoa(i + 1)
		p.WriteString(helpIndent)
		p.WriteString(strings.Repeat(" ", digits-len(n)))
		p.Set(core.Dim)
		p.WriteString(n)
		p.Reset()
		p.WriteString("  ")
		p.WriteString(entry)
		p.WriteString("\n")
	}
	p.Flush()
	return nil
}

func (s *Shell) clearHistory(context.Context, []string) error {
	s.history.Clear()
	core.WriteInfoMsg(s.stdout, "history cleared")
	return nil
}

func (s *Shell) exit(context.Context, []string) error {
	return ErrExit
}

// changeMasterPassword reads the new password twice in masked mode and hands
// it over only when both entries match. Both secrets are zeroed on return.
func (s *Shell) changeMasterPassword(ctx context.Context, _ []string) error {
	if s.setMasterPassword == nil {
		return notAvailableError("set-master-password")
	}

	first, err := s.readSecret(ctx, "New master password: ")
	if err != nil {
		return err
	}
	defer first.Release()
	if first.Len() == 0 {
		return errEmptyPassword
	}

	second, err := s.readSecret(ctx, "Confirm master password: ")
	if err != nil {
		return err
	}
	defer second.Release()

	if !first.Equal(second) {
		return errPasswordMismatch
	}
	if err := s.setMasterPassword(ctx, first); err != nil {
		return err
	}
	core.WriteInfoMsg(s.stdout, "master password changed")
	return nil
}

func (s *Shell) readSecret(ctx context.Context, prompt string) (*secret.Secret, error) {
	saved := s.editor.Prompt
	s.editor.Prompt = prompt
	defer func() { s.editor.Prompt = saved }()

	text, err := s.editor.ReadLine(ctx, true, "")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoPassword
		}
		return nil, err
	}
	return secret.New(text), nil
}
