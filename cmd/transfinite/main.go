// Command transfinite is a small CLI front end for the ordinal engine:
// it expands fast-growing-hierarchy expressions and lists fundamental
// sequences as LaTeX.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordmath/transfinite/fgh"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCommand wires the subcommands. Ordinal arguments accept a
// non-negative integer, a named constant (omega, epsilon_0, zeta_0 and
// their aliases), or a phi(s, v) expression with nested parts.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "transfinite",
		Short:         "Ordinal arithmetic below the Feferman-Schütte ordinal",
		Long:          "Expand fast-growing-hierarchy expressions and walk fundamental sequences,\nrendered as LaTeX.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newFghCommand())
	cmd.AddCommand(newSeqCommand())

	return cmd
}

// fghOptions holds flags for the fgh command.
type fghOptions struct {
	MaxSteps   int
	Complexity float64
	Trace      bool
}

// newFghCommand creates the fgh command: expand f_<subscript>(<n>).
func newFghCommand() *cobra.Command {
	opts := &fghOptions{}

	cmd := &cobra.Command{
		Use:   "fgh <subscript> <n>",
		Short: "Expand a fast-growing-hierarchy expression",
		Long: `Expand f_<subscript>(<n>) step by step until it reduces to a number
or a readability ceiling interrupts.

Examples:
  transfinite fgh 3 2
  transfinite fgh omega 2
  transfinite fgh "phi(1, 0)" 5 --complexity 4
  transfinite fgh w+1 3 --trace`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := parseOrdinal(args[0])
			if err != nil {
				return err
			}
			n, err := parseCount(args[1])
			if err != nil {
				return err
			}

			eopts := fgh.DefaultOptions()
			eopts.MaxSteps = opts.MaxSteps
			eopts.Complexity = opts.Complexity
			if opts.Trace {
				eopts.Trace = func(e fgh.Expansion) {
					fmt.Fprintln(cmd.OutOrStdout(), e.Latex())
				}
			}

			e, err := fgh.Expand(sub, n, eopts)
			if err != nil {
				return err
			}
			if !opts.Trace {
				fmt.Fprintln(cmd.OutOrStdout(), e.Latex())
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.MaxSteps, "steps", 0, "hard cap on rewrite steps (0 = uncapped)")
	cmd.Flags().Float64Var(&opts.Complexity, "complexity", 1.0, "readability budget factor")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print every intermediate state")

	return cmd
}

// seqOptions holds flags for the seq command.
type seqOptions struct {
	Count int
}

// newSeqCommand creates the seq command: list a fundamental sequence.
func newSeqCommand() *cobra.Command {
	opts := &seqOptions{}

	cmd := &cobra.Command{
		Use:   "seq <ordinal>",
		Short: "List the fundamental sequence of a limit ordinal",
		Long: `Print the first elements of the fundamental sequence of a limit
ordinal, one per line.

Examples:
  transfinite seq omega
  transfinite seq epsilon_0 --count 5
  transfinite seq "phi(omega, 0)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseOrdinal(args[0])
			if err != nil {
				return err
			}
			fs, err := v.Fundamental()
			if err != nil {
				return err
			}

			for n := 0; n < opts.Count; n++ {
				el, err := fs.Index(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s[%d] = %s\n", v, n, el)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 8, "how many elements to print")

	return cmd
}
