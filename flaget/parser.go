package flaget

import (
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-flaget/internal/intern"
)

const (
	terminator     = "--"
	negationPrefix = "--no-"
)

// Config describes one parse. Every field is optional.
//
// A key listed in both Booleans and Arrays is treated as a boolean, and
// "--no-<key>" always yields false even for array keys. Such overlaps are
// configuration conflicts and are not reported.
type Config struct {
	// Tokens to parse. A nil slice parses os.Args[1:].
	Tokens []string
	// Args names the positionals in order; the last one may be variadic
	// ("...files").
	Args []string
	// Aliases maps short or alternate keys to canonical keys.
	Aliases map[string]string
	// Arrays lists keys that always accumulate a list of values.
	Arrays []string
	// Booleans lists keys that never take a value.
	Booleans []string
	// Defaults are written for keys the command line never set. They are
	// applied in sorted key order.
	Defaults map[string]any
}

type defaultValue struct {
	key   string
	value Value
}

// Parser holds a parse configuration. Configure it before use; once
// configured, Parse may be called from several goroutines.
type Parser struct {
	args     []string
	aliases  map[string]string
	arrays   map[string]struct{}
	booleans map[string]struct{}
	defaults []defaultValue
	negation bool
}

// New returns a parser with an empty configuration.
func New() *Parser {
	return &Parser{
		aliases:  make(map[string]string),
		arrays:   make(map[string]struct{}),
		booleans: make(map[string]struct{}),
		negation: true,
	}
}

// NewParser builds a parser from cfg. cfg.Tokens is ignored.
func NewParser(cfg Config) *Parser {
	p := New().Args(cfg.Args...).Array(cfg.Arrays...).Boolean(cfg.Booleans...)
	for short, canonical := range cfg.Aliases {
		p.Alias(short, canonical)
	}
	keys := make([]string, 0, len(cfg.Defaults))
	for key := range cfg.Defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.Default(key, cfg.Defaults[key])
	}
	return p
}

// Parse parses cfg.Tokens (or os.Args[1:] when nil) with the configuration
// in cfg.
func Parse(cfg Config) *Result {
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = processArgs()
	}
	return NewParser(cfg).Parse(tokens)
}

func processArgs() []string {
	if len(os.Args) < 2 {
		return []string{}
	}
	return os.Args[1:]
}

// Alias maps short (or any alternate key) to canonical.
func (p *Parser) Alias(short, canonical string) *Parser {
	p.aliases[short] = canonical
	return p
}

// Array declares keys that always accumulate a list.
func (p *Parser) Array(keys ...string) *Parser {
	for _, key := range keys {
		p.arrays[key] = struct{}{}
	}
	return p
}

// Boolean declares keys that never consume a value.
func (p *Parser) Boolean(keys ...string) *Parser {
	for _, key := range keys {
		p.booleans[key] = struct{}{}
	}
	return p
}

// Default sets the value written for key when the command line does not
// set it. Defaults are applied in the order they were added.
func (p *Parser) Default(key string, value any) *Parser {
	v := ValueOf(value)
	for i := range p.defaults {
		if p.defaults[i].key == key {
			p.defaults[i].value = v
			return p
		}
	}
	p.defaults = append(p.defaults, defaultValue{key: key, value: v})
	return p
}

// Args names the positionals; the last name may carry the "..." prefix to
// capture every remaining positional.
func (p *Parser) Args(names ...string) *Parser {
	p.args = append(p.args, names...)
	return p
}

// Parse parses tokens. It never fails: unknown flags are accepted and
// missing values default to true.
func (p *Parser) Parse(tokens []string) *Result {
	s := p.newScanner(tokens)
	s.run()
	p.applyDefaults(s)

	return &Result{
		Flags:       s.flags,
		Positionals: s.positionals,
		Tail:        s.tail,
		Args:        bindArgs(p.args, s.positionals),
	}
}

// scanner is the per-call parse context. Every step returns the index of
// the next token to look at.
type scanner struct {
	p      *Parser
	tokens []string
	keys   *intern.Table

	flags       *Flags
	positionals []string
	tail        []string
}

func (p *Parser) newScanner(tokens []string) *scanner {
	return &scanner{
		p:           p,
		tokens:      tokens,
		keys:        intern.NewTable(len(tokens)),
		flags:       NewFlags(),
		positionals: []string{},
		tail:        []string{},
	}
}

func (s *scanner) run() {
	for i := 0; i < len(s.tokens); {
		i = s.step(i)
	}
}

// step classifies the token at i and returns the next cursor position.
func (s *scanner) step(i int) int {
	arg := s.tokens[i]

	switch {
	case arg == terminator:
		s.tail = append(s.tail, s.tokens[i+1:]...)
		return len(s.tokens)
	case strings.HasPrefix(arg, "--"):
		return s.parseLong(arg, i)
	case len(arg) > 1 && arg[0] == '-':
		return s.parseShort(arg, i)
	default:
		s.positionals = append(s.positionals, arg)
		return i + 1
	}
}

// parseLong handles --key, --key=value and --no-key.
func (s *scanner) parseLong(arg string, i int) int {
	negated := s.p.negation && strings.HasPrefix(arg, negationPrefix)

	body := arg[2:]
	if negated {
		body = arg[len(negationPrefix):]
	}
	rawKey, inline, hasInline := strings.Cut(body, "=")
	key := s.resolve(rawKey)

	if negated {
		s.writeMirrored(key, Bool(false))
		return i + 1
	}
	if s.isBoolean(key) {
		s.writeMirrored(key, Bool(true))
		return i + 1
	}
	if s.isArray(key) {
		if hasInline {
			s.appendMirrored(key, []Value{Coerce(inline)})
			return i + 1
		}
		values, next := s.readArray(i + 1)
		s.appendMirrored(key, values)
		return next
	}

	switch {
	case hasInline:
		s.writeMirrored(key, Coerce(inline))
	case s.isValue(i + 1):
		s.writeMirrored(key, Coerce(s.tokens[i+1]))
		return i + 2
	default:
		s.writeMirrored(key, Bool(true))
	}
	return i + 1
}

// parseShort handles -f, -f value and grouped toggles like -abc. Groups
// never take values.
func (s *scanner) parseShort(arg string, i int) int {
	short := arg[1:]

	if utf8.RuneCountInString(short) > 1 {
		for _, r := range short {
			s.writeMirrored(s.resolve(s.keys.Rune(r)), Bool(true))
		}
		return i + 1
	}

	key := s.resolve(short)
	switch {
	case s.isBoolean(key):
		s.writeMirrored(key, Bool(true))
	case s.isArray(key):
		values, next := s.readArray(i + 1)
		s.appendMirrored(key, values)
		return next
	case s.isValue(i + 1):
		s.writeMirrored(key, Coerce(s.tokens[i+1]))
		return i + 2
	default:
		s.writeMirrored(key, Bool(true))
	}
	return i + 1
}

// readArray coerces every token from start up to the next flag-shaped token
// and returns the values with the index of the first unconsumed token.
func (s *scanner) readArray(start int) ([]Value, int) {
	j := start
	for s.isValue(j) {
		j++
	}
	values := make([]Value, 0, j-start)
	for _, raw := range s.tokens[start:j] {
		values = append(values, Coerce(raw))
	}
	return values, j
}

// isValue reports whether a token exists at i and is not flag-shaped.
// Negative numbers look like flags here and end lookahead.
func (s *scanner) isValue(i int) bool {
	return i < len(s.tokens) && !isFlag(s.tokens[i])
}

func isFlag(token string) bool {
	return token != "" && token[0] == '-'
}

func (s *scanner) isArray(key string) bool {
	_, ok := s.p.arrays[key]
	return ok
}

func (s *scanner) isBoolean(key string) bool {
	_, ok := s.p.booleans[key]
	return ok
}

// applyDefaults writes every default whose key the scan never set.
func (p *Parser) applyDefaults(s *scanner) {
	for _, d := range p.defaults {
		if !s.flags.Has(d.key) {
			s.writeMirrored(d.key, d.value)
		}
	}
}
