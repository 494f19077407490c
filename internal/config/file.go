package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ryanfowler/keyshell/internal/core"

	"github.com/BurntSushi/toml"
)

// File represents a configuration file.
type File struct {
	Path   string
	Config *Config
}

// GetFile returns a config File, or nil if one cannot be found.
func GetFile(path string) (*File, error) {
	path, buf, err := getConfigFile(path)
	if err != nil || path == "" {
		return nil, err
	}
	return parseFile(path, string(buf))
}

// getConfigFile searches for a local config file, returning the file contents
// if it exists.
func getConfigFile(path string) (string, []byte, error) {
	if path != "" {
		// Expand '~' to the home directory.
		if len(path) >= 2 && path[0] == '~' && path[1] == os.PathSeparator {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", nil, err
			}
			path = home + path[1:]
		}
		// Direct config path was provided.
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", nil, err
		}
		path, buf, err := readFile(abs)
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, core.FileNotExistsError(abs)
		}
		return path, buf, err
	}

	if runtime.GOOS == "windows" {
		appData := os.Getenv("AppData")
		if appData == "" {
			return "", nil, nil
		}
		path, buf, err := readFile(filepath.Join(appData, "keyshell", "config.toml"))
		if err != nil {
			return "", nil, nil
		}
		return path, buf, nil
	}

	xdgHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgHome != "" {
		path, buf, err := readFile(filepath.Join(xdgHome, "keyshell", "config.toml"))
		if err == nil {
			return path, buf, nil
		}
	}

	home := os.Getenv("HOME")
	if home != "" {
		path, buf, err := readFile(filepath.Join(home, ".config", "keyshell", "config.toml"))
		if err == nil {
			return path, buf, nil
		}
	}

	return "", nil, nil
}

func readFile(path string) (string, []byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, buf, nil
}

// parseFile parses the provided TOML document, returning any error
// encountered. Every top-level key is applied in file order through
// Config.Set, so file values are validated exactly like flag values.
func parseFile(path, s string) (*File, error) {
	f := File{Path: path, Config: &Config{isFile: true}}

	var raw map[string]any
	md, err := toml.Decode(s, &raw)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, newFileError(path, perr.Position.Line, errors.New(perr.Message))
		}
		return nil, newFileError(path, 0, err)
	}

	for _, key := range md.Keys() {
		if len(key) != 1 {
			// Nested keys are reported through their top-level table.
			continue
		}
		name := key[0]

		val, err := tomlString(raw[name])
		if err != nil {
			return nil, newFileError(path, 0, fmt.Errorf("option '%s': %w", name, err))
		}
		if err := f.Config.Set(name, val); err != nil {
			return nil, newFileError(path, 0, err)
		}
	}

	return &f, nil
}

// tomlString converts a scalar TOML value to the string form accepted by
// Config.Set.
func tomlString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case map[string]any:
		return "", errors.New("tables are not supported")
	case []any, []map[string]any:
		return "", errors.New("arrays are not supported")
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// fileError represents an error that prints a config file location with an err.
type fileError struct {
	file string
	line int
	err  error
}

func newFileError(file string, line int, err error) fileError {
	return fileError{file: file, line: line, err: err}
}

func (err fileError) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("config file '%s': line %d: %s", err.file, err.line, err.err.Error())
	}
	return fmt.Sprintf("config file '%s': %s", err.file, err.err.Error())
}

func (err fileError) Unwrap() error {
	return err.err
}

func (err fileError) PrintTo(p *core.Printer) {
	p.WriteString("config file '")
	p.Set(core.Dim)
	p.WriteString(err.file)
	p.Reset()
	p.WriteString("': ")
	if err.line > 0 {
		p.WriteString("line ")
		p.WriteString(strconv.Itoa(err.line))
		p.WriteString(": ")
	}

	if pt, ok := err.err.(core.PrinterTo); ok {
		pt.PrintTo(p)
	} else {
		p.WriteString(err.err.Error())
	}
}
