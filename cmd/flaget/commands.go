package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-flaget/flaget"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func (a *app) parseCommand() *cobra.Command {
	opts := &parserOptions{}
	cmd := &cobra.Command{
		Use:   "parse [flags] -- TOKENS...",
		Short: "Parse tokens into flags, positionals, tail and named arguments",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd, args)
			if err != nil {
				return err
			}
			a.logConfig(cfg)

			res := flaget.Parse(cfg)
			a.warnNearMisses(cfg, res.Flags.Keys())
			a.log.Debug("parsed %d keys, %d positionals, %d tail tokens",
				res.Flags.Len(), len(res.Positionals), len(res.Tail))

			return render(cmd.OutOrStdout(), a.format, newParseDocument(res))
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func (a *app) flatCommand() *cobra.Command {
	opts := &parserOptions{}
	cmd := &cobra.Command{
		Use:   "flat [flags] -- TOKENS...",
		Short: "Parse tokens into a single mapping with positionals under \"_\"",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd, args)
			if err != nil {
				return err
			}
			if len(cfg.Booleans) > 0 || len(cfg.Args) > 0 {
				a.log.Warning("--boolean and --args are ignored by flat parsing")
			}
			a.logConfig(cfg)

			flags := flaget.ParseFlat(cfg.Tokens, cfg)
			a.warnNearMisses(cfg, flags.Keys())
			a.log.Debug("parsed %d keys", flags.Len())

			return render(cmd.OutOrStdout(), a.format, flatDocument{flags})
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flaget version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "flaget %s\n", buildVersion())
			return err
		},
	}
}

func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "devel"
}
