package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/paroot"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the flags shared by every prompt subcommand.
type options struct {
	prompt      string
	maxAttempts int
	tty         bool
	color       bool
	debug       bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "paroot",
		Short:        "Ask for a typed value until the input is valid",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.prompt, "prompt", "p", "", "Prompt text written to stderr before reading")
	cmd.PersistentFlags().IntVarP(&opts.maxAttempts, "max-attempts", "m", 0, "Give up after this many invalid lines (0 = never)")
	cmd.PersistentFlags().BoolVar(&opts.tty, "tty", false, "Read from the controlling terminal instead of stdin")
	cmd.PersistentFlags().BoolVar(&opts.color, "color", false, "Color the prompt and notices when stderr is a terminal")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log every failed attempt to stderr")

	cmd.AddCommand(
		charCmd(&opts),
		intCmd(&opts),
		longCmd(&opts),
		floatCmd(&opts),
		doubleCmd(&opts),
		stringCmd(&opts),
		arrayCmd(),
	)
	return cmd
}

// newReader builds the Reader for a prompt subcommand. Prompts and notices go
// to stderr so stdout carries only the accepted value.
//
// Input that is not a terminal stops at end-of-stream; otherwise a script
// piping an exhausted stream would never finish.
func newReader(cmd *cobra.Command, opts *options) (*paroot.Reader, error) {
	in := cmd.InOrStdin()
	stderr := cmd.ErrOrStderr()

	policy := paroot.Bounded(opts.maxAttempts)
	interactive := opts.tty || (in == io.Reader(os.Stdin) && paroot.IsInteractive())
	if !interactive {
		policy = paroot.StopAtEOF(policy)
	}

	readerOptions := []paroot.Option{
		paroot.WithInput(in),
		paroot.WithOutput(stderr),
		paroot.WithPolicy(policy),
	}
	if opts.tty {
		readerOptions = append(readerOptions, paroot.WithTTY())
	}
	if opts.color {
		readerOptions = append(readerOptions, paroot.WithColorScheme(paroot.ThemeDefault))
	}
	if opts.debug {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		readerOptions = append(readerOptions, paroot.WithLogger(logger))
	}

	return paroot.New(readerOptions...)
}
