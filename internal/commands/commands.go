// Package commands holds the catalog of commands understood by the shell.
package commands

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed commands.yaml
var defaultCatalog []byte

// Kind describes what an argument's value refers to, which determines how
// it is completed.
type Kind string

const (
	KindNone    Kind = ""
	KindAccount Kind = "account"
	KindChoice  Kind = "choice"
	KindCommand Kind = "command"
	KindFile    Kind = "file"
)

// Arg is a positional argument of a command.
type Arg struct {
	Name     string   `yaml:"name"`
	Kind     Kind     `yaml:"kind"`
	Values   []string `yaml:"values"`
	Optional bool     `yaml:"optional"`
}

// Command is a single catalog entry.
type Command struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	Aliases []string `yaml:"aliases"`
	Builtin bool     `yaml:"builtin"`
	Args    []Arg    `yaml:"args"`
}

// Usage returns the command name followed by its arguments, with optional
// arguments in brackets.
func (c *Command) Usage() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, arg := range c.Args {
		sb.WriteByte(' ')
		if arg.Optional {
			sb.WriteString("[" + arg.Name + "]")
		} else {
			sb.WriteString("<" + arg.Name + ">")
		}
	}
	return sb.String()
}

// Arg returns the i'th argument, if the command accepts one.
func (c *Command) Arg(i int) (Arg, bool) {
	if i < 0 || i >= len(c.Args) {
		return Arg{}, false
	}
	return c.Args[i], true
}

// Catalog is an immutable, name-ordered set of commands.
type Catalog struct {
	commands []*Command
	byName   map[string]*Command
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("commands: invalid embedded catalog: %s", err))
	}
	return c
}

// Parse parses and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Commands []*Command `yaml:"commands"`
	}
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}

	c := &Catalog{byName: make(map[string]*Command, len(doc.Commands))}
	for _, cmd := range doc.Commands {
		if err := validate(cmd); err != nil {
			return nil, err
		}
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			if _, ok := c.byName[name]; ok {
				return nil, fmt.Errorf("duplicate command name '%s'", name)
			}
			c.byName[name] = cmd
		}
		c.commands = append(c.commands, cmd)
	}

	slices.SortFunc(c.commands, func(a, b *Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return c, nil
}

func validate(cmd *Command) error {
	if cmd.Name == "" {
		return errors.New("command name cannot be empty")
	}
	if strings.ContainsAny(cmd.Name, " \t'\"") {
		return fmt.Errorf("invalid command name '%s'", cmd.Name)
	}

	var optional bool
	for _, arg := range cmd.Args {
		switch arg.Kind {
		case KindNone, KindAccount, KindCommand, KindFile:
		case KindChoice:
			if len(arg.Values) == 0 {
				return fmt.Errorf("command '%s': argument '%s' has no values", cmd.Name, arg.Name)
			}
		default:
			return fmt.Errorf("command '%s': argument '%s' has unknown kind '%s'", cmd.Name, arg.Name, arg.Kind)
		}
		if optional && !arg.Optional {
			return fmt.Errorf("command '%s': required argument '%s' follows an optional one", cmd.Name, arg.Name)
		}
		optional = arg.Optional
	}
	return nil
}

// Lookup returns the command with the provided name or alias.
func (c *Catalog) Lookup(name string) (*Command, bool) {
	cmd, ok := c.byName[name]
	return cmd, ok
}

// Commands returns all commands ordered by name.
func (c *Catalog) Commands() []*Command {
	return slices.Clone(c.commands)
}

// Names returns every command name and alias, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
