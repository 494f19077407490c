// Package complete provides tab completion for shell input.
package complete

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ryanfowler/keyshell/internal/commands"
	"github.com/ryanfowler/keyshell/internal/line"
	"github.com/ryanfowler/keyshell/internal/token"

	"golang.org/x/text/cases"
)

// Provider completes command names and arguments from a catalog.
type Provider struct {
	Catalog *commands.Catalog

	// Accounts lists the account names of the open repository, if any.
	Accounts func() ([]string, error)

	Logger *slog.Logger
}

// Complete returns the candidates for the token ending at the caret, where
// pos is the offset of the rune before the caret. Only a caret at the end
// of the line is completed.
func (p *Provider) Complete(text string, pos int) (line.Completion, error) {
	runes := []rune(text)
	if pos+1 != len(runes) {
		return line.Completion{}, nil
	}

	tokens := token.Parse(text)
	index, prefix, anchor, ok := current(runes, tokens)
	if !ok {
		return line.Completion{}, nil
	}

	values, err := p.values(tokens, index, prefix)
	if err != nil {
		return line.Completion{}, err
	}

	candidates := make([]string, 0, len(values))
	for _, v := range values {
		candidates = append(candidates, token.Quote(v))
	}
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	p.logger().Debug("completion",
		"line", text, "token", index, "prefix", prefix, "candidates", len(candidates))
	return line.Completion{Candidates: candidates, Consumed: anchor}, nil
}

// current returns the index and unquoted text of the token being completed,
// along with the rune offset at which its raw text (including any opening
// quote) starts.
func current(runes []rune, tokens []token.Token) (int, string, int, bool) {
	n := len(runes)
	if i := token.At(tokens, n); i >= 0 {
		tok := tokens[i]
		anchor := tok.Start
		if tok.Kind == token.String && anchor > 0 && isQuote(runes[anchor-1]) &&
			(anchor == 1 || runes[anchor-2] == ' ') {
			anchor--
		}
		return i, tok.Text, anchor, true
	}

	// A new token starts at the caret, unless the caret directly follows a
	// closing quote.
	if n > 0 && runes[n-1] != ' ' {
		return 0, "", 0, false
	}
	return len(tokens), "", n, true
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

func (p *Provider) values(tokens []token.Token, index int, prefix string) ([]string, error) {
	if index == 0 {
		return filterFold(p.Catalog.Names(), prefix), nil
	}

	cmd, ok := p.Catalog.Lookup(tokens[0].Text)
	if !ok {
		return nil, nil
	}
	arg, ok := cmd.Arg(index - 1)
	if !ok {
		return nil, nil
	}

	switch arg.Kind {
	case commands.KindCommand:
		return filterFold(p.Catalog.Names(), prefix), nil
	case commands.KindChoice:
		return filterFold(arg.Values, prefix), nil
	case commands.KindAccount:
		if p.Accounts == nil {
			return nil, nil
		}
		accounts, err := p.Accounts()
		if err != nil {
			return nil, err
		}
		return filterFold(accounts, prefix), nil
	case commands.KindFile:
		return completePath(prefix), nil
	}
	return nil, nil
}

func (p *Provider) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// filterFold returns the values that start with prefix, ignoring case.
func filterFold(values []string, prefix string) []string {
	fold := cases.Fold()
	prefix = fold.String(prefix)

	var out []string
	for _, v := range values {
		if strings.HasPrefix(fold.String(v), prefix) {
			out = append(out, v)
		}
	}
	return out
}

// completePath returns the files matching the partial path orig.
// Directories are returned with a trailing separator.
func completePath(orig string) []string {
	path := os.ExpandEnv(orig)

	if orig == "~" {
		// Special case when path is '~'.
		return []string{"~" + string(os.PathSeparator)}
	}

	if len(path) >= 2 && path[0] == '~' && path[1] == os.PathSeparator {
		// Expand '~' to the user's home directory.
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + path[1:]
		}
	}

	// Read all files in the base directory.
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	// Parse the path's base to know what to filter on.
	var base string
	if path != "" && !strings.HasSuffix(path, string(os.PathSeparator)) {
		base = filepath.Base(path)
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()

		// Skip hidden files unless a dot was typed.
		if !strings.HasPrefix(base, ".") && strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(name, base) {
			continue
		}

		// Format the completion using the original file path.
		file := name
		if d := pathDir(orig); d != "" {
			file = d + name
		}
		if entry.IsDir() {
			file += string(os.PathSeparator)
		}
		out = append(out, file)
	}
	return out
}

// pathDir returns the directory portion of orig as typed, including the
// trailing separator, or "" when orig has no directory part.
func pathDir(orig string) string {
	i := strings.LastIndexByte(orig, os.PathSeparator)
	if i < 0 {
		return ""
	}
	return orig[:i+1]
}
