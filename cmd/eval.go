package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/piecewise/internal/domain"
	m "github.com/mouse-blink/piecewise/internal/model"
)

// evalCmd represents the eval command.
var evalCmd = newEvalCmd()

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval FUNCTION ARGS...",
		Short: "Evaluate a single call",
		Long: `Evaluate one call and print its value and the branches it took.

  piecewise eval calculate 5 -3
  piecewise eval func 8 5 2

Flags must come before FUNCTION; everything after it is an argument, so
negative numbers need no escaping.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			evalArgs, err := parseEvalArgs(args)
			if err != nil {
				return err
			}

			return workflow.Eval(evalArgs)
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func parseEvalArgs(args []string) (domain.EvalArgs, error) {
	fn := m.Function(strings.ToLower(args[0]))
	if fn.Arity() == 0 {
		return domain.EvalArgs{}, fmt.Errorf("unknown function %q", args[0])
	}

	if got := len(args) - 1; got != fn.Arity() {
		return domain.EvalArgs{}, fmt.Errorf("%s takes %d arguments, got %d", fn, fn.Arity(), got)
	}

	values := make([]int, 0, fn.Arity())

	for _, arg := range args[1:] {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return domain.EvalArgs{}, fmt.Errorf("argument %q: %w", arg, err)
		}

		values = append(values, v)
	}

	return domain.EvalArgs{Function: fn, Args: values}, nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
