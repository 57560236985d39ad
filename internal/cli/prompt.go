package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nao1215/paroot"
)

// promptCmd builds a subcommand that runs ask once and prints its result.
func promptCmd(use, short string, opts *options, ask func(r *paroot.Reader, prompt string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newReader(cmd, opts)
			if err != nil {
				return err
			}
			defer r.Close()

			value, err := ask(r, opts.prompt)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func charCmd(opts *options) *cobra.Command {
	return promptCmd("char", "Read exactly one character", opts, func(r *paroot.Reader, prompt string) (string, error) {
		c, err := r.GetChar(prompt)
		if err != nil {
			return "", err
		}
		return string([]byte{c}), nil
	})
}

func intCmd(opts *options) *cobra.Command {
	return promptCmd("int", "Read a 32-bit integer", opts, func(r *paroot.Reader, prompt string) (string, error) {
		v, err := r.GetInt(prompt)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	})
}

func longCmd(opts *options) *cobra.Command {
	return promptCmd("long", "Read a 64-bit integer", opts, func(r *paroot.Reader, prompt string) (string, error) {
		v, err := r.GetLong(prompt)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	})
}

func floatCmd(opts *options) *cobra.Command {
	return promptCmd("float", "Read a 32-bit floating point number", opts, func(r *paroot.Reader, prompt string) (string, error) {
		v, err := r.GetFloat(prompt)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	})
}

func doubleCmd(opts *options) *cobra.Command {
	return promptCmd("double", "Read a 64-bit floating point number", opts, func(r *paroot.Reader, prompt string) (string, error) {
		v, err := r.GetDouble(prompt)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	})
}

func stringCmd(opts *options) *cobra.Command {
	return promptCmd("string", "Read one line verbatim", opts, func(r *paroot.Reader, prompt string) (string, error) {
		return r.GetString(prompt)
	})
}
