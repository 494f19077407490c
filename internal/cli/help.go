package cli

import (
	"strings"

	"github.com/ryanfowler/keyshell/internal/core"

	"github.com/mattn/go-runewidth"
)

func printHelp(cli *CLI, p *core.Printer) {
	p.WriteString(cli.Description)
	p.WriteString("\n\n")

	writeHeading(p, "Usage")
	p.WriteString(": ")
	p.Set(core.Bold)
	p.WriteString(cli.Name)
	p.Reset()
	if len(cli.Flags) > 0 {
		p.WriteString(" [OPTIONS]")
	}
	for _, arg := range cli.Args {
		p.WriteString(" [" + arg.Name + "]...")
	}
	p.WriteString("\n")

	if len(cli.Args) > 0 {
		p.WriteString("\n")
		writeHeading(p, "Arguments")
		p.WriteString(":\n")
		for _, arg := range cli.Args {
			p.WriteString("  [" + arg.Name + "]  ")
			p.WriteString(arg.Description)
			p.WriteString("\n")
		}
	}

	flags := visibleFlags(cli.Flags)
	if len(flags) == 0 {
		return
	}

	p.WriteString("\n")
	writeHeading(p, "Options")
	p.WriteString(":\n")

	var width int
	for _, f := range flags {
		width = max(width, runewidth.StringWidth(flagNames(f)+flagArgs(f)))
	}
	for _, f := range flags {
		names, args := flagNames(f), flagArgs(f)

		p.WriteString("  ")
		p.Set(core.Bold)
		p.WriteString(names)
		p.Reset()
		p.WriteString(args)
		p.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(names+args)+2))
		p.WriteString(flagDescription(f))
		p.WriteString("\n")
	}
}

func writeHeading(p *core.Printer, s string) {
	p.Set(core.Bold, core.Underline)
	p.WriteString(s)
	p.Reset()
}

func visibleFlags(fs []Flag) []Flag {
	out := make([]Flag, 0, len(fs))
	for _, f := range fs {
		if !f.IsHidden {
			out = append(out, f)
		}
	}
	return out
}

// flagNames returns the names of a flag as shown in help, such as
// "-p, --prompt". Flags without a short form are indented to line up.
func flagNames(f Flag) string {
	if f.Short == "" {
		return "    --" + f.Long
	}
	return "-" + f.Short + ", --" + f.Long
}

func flagArgs(f Flag) string {
	if !f.takesValue() {
		return ""
	}
	return " <" + f.Args + ">"
}

func flagDescription(f Flag) string {
	desc := f.Description
	if len(f.Values) > 0 {
		desc += " [" + strings.Join(f.Values, ", ") + "]"
	}
	if f.Default != "" {
		desc += " [default: " + f.Default + "]"
	}
	return desc
}
