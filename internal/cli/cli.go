package cli

import (
	"slices"
	"strings"

	"github.com/ryanfowler/keyshell/internal/core"
)

// CLI describes a command line interface: its arguments, flags and the
// groups of flags that cannot be combined.
type CLI struct {
	Name           string
	Description    string
	ArgFn          func(s string) error
	Args           []Arguments
	Flags          []Flag
	ExclusiveFlags [][]string
}

type Arguments struct {
	Name        string
	Description string
}

// Flag is a single option. Flags with an empty Args take no value.
type Flag struct {
	Short       string
	Long        string
	Aliases     []string
	Args        string
	Description string
	Default     string
	Values      []string
	IsHidden    bool
	IsSet       func() bool
	Fn          func(value string) error
}

func (f *Flag) takesValue() bool {
	return f.Args != ""
}

// apply checks value against the flag's accepted values, if any, and hands
// it to the flag.
func (f *Flag) apply(value string) error {
	if len(f.Values) > 0 && !slices.Contains(f.Values, value) {
		usage := "must be one of [" + strings.Join(f.Values, ", ") + "]"
		return core.NewValueError(f.Long, value, usage, false)
	}
	return f.Fn(value)
}

// parser resolves flag names to flags for a single CLI.
type parser struct {
	cli   *CLI
	short map[byte]*Flag
	long  map[string]*Flag
}

func newParser(cli *CLI) *parser {
	p := &parser{
		cli:   cli,
		short: make(map[byte]*Flag),
		long:  make(map[string]*Flag),
	}
	for i := range cli.Flags {
		f := &cli.Flags[i]
		if f.Short != "" {
			p.short[f.Short[0]] = f
		}
		p.long[f.Long] = f
		for _, alias := range f.Aliases {
			if len(alias) == 1 {
				p.short[alias[0]] = f
			} else {
				p.long[alias] = f
			}
		}
	}
	return p
}

func parse(cli *CLI, args []string) error {
	p := newParser(cli)

	for len(args) > 0 {
		arg := args[0]
		args = args[1:]

		var err error
		switch {
		case arg == "--":
			// Everything after "--" is an argument.
			return p.finish(append([]string{"--"}, args...))
		case len(arg) > 2 && strings.HasPrefix(arg, "--"):
			args, err = p.longFlag(arg[2:], args)
		case len(arg) > 1 && arg[0] == '-':
			args, err = p.shortFlags(arg[1:], args)
		default:
			err = cli.ArgFn(arg)
		}
		if err != nil {
			return err
		}
	}
	return p.finish(nil)
}

// finish passes any remaining arguments through and checks exclusive flags.
func (p *parser) finish(rest []string) error {
	for _, arg := range rest {
		if err := p.cli.ArgFn(arg); err != nil {
			return err
		}
	}
	for _, group := range p.cli.ExclusiveFlags {
		if err := p.checkExclusive(group); err != nil {
			return err
		}
	}
	return nil
}

// shortFlags parses a cluster of short flags such as "-op" or "-m#". A flag
// that takes a value consumes the rest of the cluster, or the next argument.
func (p *parser) shortFlags(cluster string, args []string) ([]string, error) {
	for i := 0; i < len(cluster); i++ {
		name := "-" + cluster[i:i+1]
		flag, ok := p.short[cluster[i]]
		if !ok {
			return nil, flagError{kind: unknownFlag, flag: name}
		}

		rest := cluster[i+1:]
		if !flag.takesValue() {
			if strings.HasPrefix(rest, "=") {
				return nil, flagError{kind: flagNoArgs, flag: name}
			}
			if err := flag.apply(""); err != nil {
				return nil, err
			}
			continue
		}

		value := strings.TrimPrefix(rest, "=")
		if rest == "" {
			if len(args) == 0 {
				return nil, flagError{kind: argRequired, flag: name}
			}
			value, args = args[0], args[1:]
		}
		return args, flag.apply(value)
	}
	return args, nil
}

// longFlag parses "--name", "--name=value" or "--name value".
func (p *parser) longFlag(arg string, args []string) ([]string, error) {
	name, value, hasValue := strings.Cut(arg, "=")
	flag, ok := p.long[name]
	if !ok {
		return nil, flagError{kind: unknownFlag, flag: "--" + name}
	}

	if !flag.takesValue() {
		if hasValue {
			return nil, flagError{kind: flagNoArgs, flag: "--" + name}
		}
		return args, flag.apply("")
	}

	if !hasValue {
		if len(args) == 0 {
			return nil, flagError{kind: argRequired, flag: "--" + name}
		}
		value, args = args[0], args[1:]
	}
	return args, flag.apply(value)
}

func (p *parser) checkExclusive(group []string) error {
	var set string
	for _, name := range group {
		flag, ok := p.long[name]
		if !ok || flag.IsSet == nil || !flag.IsSet() {
			continue
		}
		if set != "" {
			return exclusiveFlagsError{first: set, second: name}
		}
		set = name
	}
	return nil
}
