package cli

import (
	"fmt"

	"github.com/ryanfowler/keyshell/internal/core"
)

type flagErrorKind uint8

const (
	unknownFlag flagErrorKind = iota
	flagNoArgs
	argRequired
)

// flagError reports a problem with a single flag as typed on the command
// line, e.g. "--prompt" or "-z".
type flagError struct {
	kind flagErrorKind
	flag string
}

// parts returns the message text around the flag name.
func (err flagError) parts() (string, string) {
	switch err.kind {
	case flagNoArgs:
		return "flag '", "' does not take any arguments"
	case argRequired:
		return "argument required for flag '", "'"
	default:
		return "unknown flag '", "'"
	}
}

func (err flagError) Error() string {
	before, after := err.parts()
	return before + err.flag + after
}

func (err flagError) PrintTo(p *core.Printer) {
	before, after := err.parts()
	p.WriteString(before)
	p.Set(core.Bold)
	p.WriteString(err.flag)
	p.Reset()
	p.WriteString(after)
}

type exclusiveFlagsError struct {
	first, second string
}

func (err exclusiveFlagsError) Error() string {
	return fmt.Sprintf("flags '--%s' and '--%s' cannot be used together", err.first, err.second)
}

func (err exclusiveFlagsError) PrintTo(p *core.Printer) {
	p.WriteString("flags '")
	for i, name := range []string{err.first, err.second} {
		if i > 0 {
			p.WriteString("' and '")
		}
		p.Set(core.Bold)
		p.WriteString("--" + name)
		p.Reset()
	}
	p.WriteString("' cannot be used together")
}
