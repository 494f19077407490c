package shell

import (
	"errors"
	"fmt"

	"github.com/ryanfowler/keyshell/internal/commands"
	"github.com/ryanfowler/keyshell/internal/core"
)

var (
	errEmptyPassword    = errors.New("master password cannot be empty")
	errNoPassword       = errors.New("no password entered")
	errPasswordMismatch = errors.New("passwords do not match")
)

type unknownCommandError string

func (err unknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s'", string(err))
}

func (err unknownCommandError) PrintTo(p *core.Printer) {
	p.WriteString("unknown command '")
	p.Set(core.Yellow)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'; try '")
	p.Set(core.Bold)
	p.WriteString("help")
	p.Reset()
	p.WriteString("'")
}

type notAvailableError string

func (err notAvailableError) Error() string {
	return fmt.Sprintf("command '%s' is not available", string(err))
}

func (err notAvailableError) PrintTo(p *core.Printer) {
	p.WriteString("command '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("' is not available")
}

type usageError struct {
	cmd *commands.Command
	msg string
}

func (err *usageError) Error() string {
	return fmt.Sprintf("%s: %s (usage: %s)", err.cmd.Name, err.msg, err.cmd.Usage())
}

func (err *usageError) PrintTo(p *core.Printer) {
	p.Set(core.Bold)
	p.WriteString(err.cmd.Name)
	p.Reset()
	p.WriteString(": ")
	p.WriteString(err.msg)
	p.WriteString("\n\n")

	p.Set(core.Bold, core.Underline)
	p.WriteString("Usage")
	p.Reset()
	p.WriteString(": ")
	p.WriteString(err.cmd.Usage())
}
