package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/paroot"
)

func arrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "array <int|float|double> [values...]",
		Short: "Print values as a bracketed, comma-separated list",
		Long: "Print values the way paroot's PrintArray helpers do.\n" +
			"Put -- before the values when the first one is negative.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, values := args[0], args[1:]

			var line string
			switch kind {
			case "int":
				v, err := parseAll(values, paroot.ParseInt)
				if err != nil {
					return err
				}
				line = paroot.FormatArrayInt(v)
			case "float":
				v, err := parseAll(values, paroot.ParseFloat)
				if err != nil {
					return err
				}
				line = paroot.FormatArrayFloat(v)
			case "double":
				v, err := parseAll(values, paroot.ParseDouble)
				if err != nil {
					return err
				}
				line = paroot.FormatArrayDouble(v)
			default:
				return fmt.Errorf("unknown array type %q (want int, float or double)", kind)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(args))
	for i, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}
