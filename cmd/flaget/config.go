package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dzonerzy/go-flaget/flaget"
	"github.com/dzonerzy/go-flaget/internal/suggest"
	"github.com/dzonerzy/go-flaget/internal/tokenize"
	flagetio "github.com/dzonerzy/go-flaget/io"
)

// parserOptions collects the flaget.Config pieces given on the command line.
type parserOptions struct {
	aliases  map[string]string
	arrays   []string
	booleans []string
	defaults []string
	args     []string
	line     string
}

func (o *parserOptions) bind(fs *pflag.FlagSet) {
	fs.StringToStringVar(&o.aliases, "alias", nil, "alias `short=canonical` (repeatable)")
	fs.StringSliceVar(&o.arrays, "array", nil, "keys that collect every following value")
	fs.StringSliceVar(&o.booleans, "boolean", nil, "keys that never consume a value")
	fs.StringArrayVar(&o.defaults, "default", nil, "default `key=value` for absent keys (repeatable)")
	fs.StringSliceVar(&o.args, "args", nil, "names bound to positionals, \"...name\" is variadic")
	fs.StringVar(&o.line, "line", "", "parse a shell-quoted command line instead of arguments")
}

// config builds the parser configuration. Tokens come from --line when set,
// otherwise from the command's positional arguments.
func (o *parserOptions) config(cmd *cobra.Command, positional []string) (flaget.Config, error) {
	cfg := flaget.Config{
		Aliases:  o.aliases,
		Arrays:   o.arrays,
		Booleans: o.booleans,
		Args:     o.args,
	}

	for short, canonical := range o.aliases {
		if short == "" || canonical == "" {
			return cfg, &UsageError{Err: fmt.Errorf("malformed --alias %q: expected short=canonical", short+"="+canonical)}
		}
	}

	if len(o.defaults) > 0 {
		cfg.Defaults = make(map[string]any, len(o.defaults))
		for _, d := range o.defaults {
			key, raw, ok := strings.Cut(d, "=")
			if !ok || key == "" {
				return cfg, &UsageError{Err: fmt.Errorf("malformed --default %q: expected key=value", d)}
			}
			cfg.Defaults[key] = flaget.Coerce(raw)
		}
	}

	tokens := positional
	if cmd.Flags().Changed("line") {
		if len(positional) > 0 {
			return cfg, &UsageError{Err: errors.New("--line cannot be combined with positional tokens")}
		}
		split, err := tokenize.Split(o.line)
		if err != nil {
			return cfg, err
		}
		tokens = split
	}
	// A nil slice would make flaget read os.Args.
	if tokens == nil {
		tokens = []string{}
	}
	cfg.Tokens = tokens
	return cfg, nil
}

func (a *app) logConfig(cfg flaget.Config) {
	if !a.log.Enabled(flagetio.LevelDebug) {
		return
	}
	aliases := make([]string, 0, len(cfg.Aliases))
	for k, v := range cfg.Aliases {
		aliases = append(aliases, k+"="+v)
	}
	sort.Strings(aliases)
	defaults := make([]string, 0, len(cfg.Defaults))
	for k, v := range cfg.Defaults {
		defaults = append(defaults, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(defaults)

	a.log.Debug("aliases: %v", aliases)
	a.log.Debug("arrays: %v booleans: %v", cfg.Arrays, cfg.Booleans)
	a.log.Debug("defaults: %v", defaults)
	a.log.Debug("args: %v", cfg.Args)
	a.log.Debug("tokens: %q", cfg.Tokens)
}

// warnNearMisses flags keys that were not declared but sit one or two edits
// away from a declared one, e.g. "--file" when "files" is an array.
func (a *app) warnNearMisses(cfg flaget.Config, keys []string) {
	declared := make([]string, 0, len(cfg.Arrays)+len(cfg.Booleans)+2*len(cfg.Aliases)+len(cfg.Defaults))
	declared = append(declared, cfg.Arrays...)
	declared = append(declared, cfg.Booleans...)
	for short, canonical := range cfg.Aliases {
		declared = append(declared, short, canonical)
	}
	for key := range cfg.Defaults {
		declared = append(declared, key)
	}
	if len(declared) == 0 {
		return
	}
	sort.Strings(declared)

	known := make(map[string]struct{}, len(declared)+len(keys))
	for _, k := range declared {
		known[k] = struct{}{}
		known[flaget.CamelCase(k)] = struct{}{}
	}

	matcher := suggest.NewMatcher(2)
	for _, key := range keys {
		if _, ok := known[key]; ok || key == flaget.PositionalKey {
			continue
		}
		// Skip the camelCase mirror of a key already reported.
		known[flaget.CamelCase(key)] = struct{}{}
		if near := matcher.Closest(key, declared); near != "" {
			a.log.Warning("--%s is not declared; did you mean --%s?", key, near)
		}
	}
}
