package core

// DefaultTerminalCols is used when the terminal width is unavailable.
const DefaultTerminalCols = 80

// GetTerminalCols returns the number of columns in the terminal, or
// DefaultTerminalCols if unavailable.
func GetTerminalCols() int {
	ts, err := GetTerminalSize()
	if err != nil || ts.Cols <= 0 {
		return DefaultTerminalCols
	}
	return ts.Cols
}
