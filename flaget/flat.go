package flaget

// PositionalKey is the key under which ParseFlat stores positionals.
const PositionalKey = "_"

// ParseFlat parses tokens into a single mapping, the historical result
// shape: flags sit next to PositionalKey, a list holding the positionals
// followed by every token after "--".
//
// The flat form predates negation and boolean keys: "--no-cache" is the
// ordinary key "no-cache" (mirrored as "noCache"), cfg.Booleans and cfg.Args
// are ignored, and cfg.Tokens is ignored in favour of tokens (nil parses
// os.Args[1:]).
//
// Value handling is the same as Parse, which differs from the historical
// parser in two places: an inline value keeps everything after the first
// "=", so "--k=a=b" sets k to "a=b" rather than "a", and an empty token is
// an ordinary value, so `--tag "" x` collects ["", "x"] instead of stopping
// the lookahead.
func ParseFlat(tokens []string, cfg Config) *Flags {
	if tokens == nil {
		tokens = processArgs()
	}

	p := NewParser(Config{Aliases: cfg.Aliases, Arrays: cfg.Arrays, Defaults: cfg.Defaults})
	p.negation = false

	s := p.newScanner(tokens)
	s.flags.Set(PositionalKey, Strings())
	s.run()

	rest := make([]string, 0, len(s.positionals)+len(s.tail))
	rest = append(rest, s.positionals...)
	rest = append(rest, s.tail...)
	s.flags.Set(PositionalKey, Strings(rest...))

	p.applyDefaults(s)
	return s.flags
}
