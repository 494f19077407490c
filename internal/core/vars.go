package core

import (
	"os"
	"runtime/debug"
)

// TerminalSize represents the dimensions of the terminal.
type TerminalSize struct {
	Cols int // Number of columns (characters)
	Rows int // Number of rows (characters)
}

var (
	IsStderrTerm bool
	IsStdoutTerm bool

	Version string
)

func init() {
	// Determine if stderr and stdout are TTYs.
	IsStderrTerm = isTerminal(int(os.Stderr.Fd()))
	IsStdoutTerm = isTerminal(int(os.Stdout.Fd()))

	Version = getVersion()
}

// getVersion attempts to read the executable's BuildInfo, returning the version.
func getVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "v(dev)"
	}
	return buildInfo.Main.Version
}
