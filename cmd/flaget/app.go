package main

import (
	"github.com/spf13/cobra"

	flagetio "github.com/dzonerzy/go-flaget/io"
)

type app struct {
	io  *flagetio.IOManager
	log *flagetio.Logger
	// logIO routes every log level to stderr so stdout only carries the
	// rendered document.
	logIO *flagetio.IOManager

	format  string
	noColor bool
	verbose bool
}

func newApp(m *flagetio.IOManager) *app {
	logIO := flagetio.New().WithOut(m.Err()).WithErr(m.Err())
	return &app{
		io:     m,
		logIO:  logIO,
		log:    flagetio.NewLogger(logIO).WithFormat(flagetio.LogFormatTagged),
		format: formatJSON,
	}
}

// run executes the command tree with args and returns the process exit code.
func run(args []string, m *flagetio.IOManager) int {
	a := newApp(m)
	root := a.rootCommand()
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		a.log.Error("%v", err)
	}
	return newExitCodes().resolve(err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "flaget",
		Short:         "Inspect how command-line tokens are parsed",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.noColor {
				a.logIO.NoColor()
			}
			if a.verbose {
				a.log.WithLevel(flagetio.LevelDebug)
			}
			_, err := parseFormat(a.format)
			return err
		},
	}
	root.SetIn(a.io.In())
	root.SetOut(a.io.Out())
	root.SetErr(a.io.Err())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.format, "format", "o", formatJSON, "output format: json, yaml or toml")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored log output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log the effective parser configuration")

	root.AddCommand(a.parseCommand(), a.flatCommand(), a.versionCommand())
	return root
}
