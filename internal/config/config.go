package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ryanfowler/keyshell/internal/core"

	"github.com/mattn/go-runewidth"
)

// Config represents the configuration options for keyshell.
type Config struct {
	isFile bool

	Color       core.Color
	HistorySize *int
	LogFile     *string
	LogLevel    *slog.Level
	Mask        *rune
	Overwrite   *bool
	Prompt      *string
}

// Merge merges the two Configs together, with "c" taking priority.
func (c *Config) Merge(c2 *Config) {
	if c2 == nil {
		return
	}
	if c.Color == core.ColorUnknown {
		c.Color = c2.Color
	}
	if c.HistorySize == nil {
		c.HistorySize = c2.HistorySize
	}
	if c.LogFile == nil {
		c.LogFile = c2.LogFile
	}
	if c.LogLevel == nil {
		c.LogLevel = c2.LogLevel
	}
	if c.Mask == nil {
		c.Mask = c2.Mask
	}
	if c.Overwrite == nil {
		c.Overwrite = c2.Overwrite
	}
	if c.Prompt == nil {
		c.Prompt = c2.Prompt
	}
}

// Set sets the provided key and value pair, returning any error encountered.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "color", "colour":
		err = c.ParseColor(val)
	case "history-size":
		err = c.ParseHistorySize(val)
	case "log-file":
		err = c.ParseLogFile(val)
	case "log-level":
		err = c.ParseLogLevel(val)
	case "mask":
		err = c.ParseMask(val)
	case "overwrite":
		err = c.ParseOverwrite(val)
	case "prompt":
		err = c.ParsePrompt(val)
	default:
		err = invalidOptionError(key)
	}
	return err
}

func (c *Config) ParseColor(value string) error {
	switch value {
	case "auto":
		c.Color = core.ColorAuto
	case "off":
		c.Color = core.ColorOff
	case "on":
		c.Color = core.ColorOn
	default:
		const usage = "must be one of [auto, off, on]"
		return core.NewValueError("color", value, usage, c.isFile)
	}
	return nil
}

func (c *Config) ParseHistorySize(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		const usage = "must be a non-negative integer"
		return core.NewValueError("history-size", value, usage, c.isFile)
	}
	c.HistorySize = &n
	return nil
}

func (c *Config) ParseLogFile(value string) error {
	c.LogFile = &value
	return nil
}

func (c *Config) ParseLogLevel(value string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		const usage = "must be one of [debug, info, warn, error]"
		return core.NewValueError("log-level", value, usage, c.isFile)
	}
	c.LogLevel = &level
	return nil
}

func (c *Config) ParseMask(value string) error {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 || size != len(value) || r == utf8.RuneError ||
		unicode.IsControl(r) || runewidth.RuneWidth(r) == 0 {
		const usage = "must be a single printable character"
		return core.NewValueError("mask", value, usage, c.isFile)
	}
	c.Mask = &r
	return nil
}

func (c *Config) ParseOverwrite(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return core.NewValueError("overwrite", value, "must be a boolean", c.isFile)
	}
	c.Overwrite = &v
	return nil
}

func (c *Config) ParsePrompt(value string) error {
	if strings.ContainsFunc(value, unicode.IsControl) {
		const usage = "must not contain control characters"
		return core.NewValueError("prompt", value, usage, c.isFile)
	}
	c.Prompt = &value
	return nil
}

type invalidOptionError string

func (err invalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: '%s'", string(err))
}

func (err invalidOptionError) PrintTo(p *core.Printer) {
	p.WriteString("invalid option: '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}
