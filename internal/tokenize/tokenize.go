// Package tokenize splits a command-line string into tokens the way a
// POSIX shell would, for tests and tooling. Parsing never depends on it.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// SplitError reports a command line that could not be split, usually
// because of an unterminated quote.
type SplitError struct {
	Line string
	Err  error
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("cannot split %q: %v", e.Line, e.Err)
}

func (e *SplitError) Unwrap() error { return e.Err }

// Split tokenizes line honoring single quotes, double quotes and
// backslash escapes. There is no comment syntax: "#fff" is an ordinary
// word and nothing after it is dropped. A token ending in "=" is joined with the next token
// unless that token starts with "-", so `--key= "a b"` yields "--key=a b".
func Split(line string) ([]string, error) {
	tokens, err := shellquote.Split(line)
	if err != nil {
		return nil, &SplitError{Line: line, Err: err}
	}
	return joinAssignments(tokens), nil
}

// MustSplit is like Split but panics on error. Intended for tests.
func MustSplit(line string) []string {
	tokens, err := Split(line)
	if err != nil {
		panic(err)
	}
	return tokens
}

func joinAssignments(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if strings.HasSuffix(tok, "=") && i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
			tok += tokens[i+1]
			i++
		}
		out = append(out, tok)
	}
	return out
}
