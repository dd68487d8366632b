// Command ackgo searches for the Synacor teleporter confirmation value: the
// p in [0, 32767] for which the modified Ackermann function A(4, 1, p)
// evaluates to 6 under mod-32768 arithmetic.
//
// Run bare it performs exactly that search, prints one result line on stdout
// and exits 0 on success or 1 when the range is exhausted. The canonical
// constants can be overridden with flags for narrowed or exploratory runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ackgo/internal/core"
	"ackgo/pkg/acksearch"
)

func main() {
	exitCode := 0
	root := newRootCmd(&exitCode)
	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(exitCode)
}

func newRootCmd(exitCode *int) *cobra.Command {
	var (
		m       uint16
		n       uint16
		target  uint16
		from    uint16
		to      uint16
		verbose bool
	)
	defaults := core.DefaultSearchConfig()

	cmd := &cobra.Command{
		Use:   "ackgo",
		Short: "Search for the teleporter confirmation value",
		Long: "ackgo scans p over [from, to] for the first value satisfying\n" +
			"A(m, n, p) == target, where A is the Ackermann variant that\n" +
			"substitutes p for the usual constant 1, over 15-bit wrapping\n" +
			"arithmetic. Exit status is 0 when a solution is found, 1 when\n" +
			"the range is exhausted.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := core.SearchConfig{
				M:       core.Word(m),
				N:       core.Word(n),
				Target:  core.Word(target),
				PStart:  core.Word(from),
				PEnd:    core.Word(to),
				Verbose: verbose,
			}
			solver, err := acksearch.New(cfg)
			if err != nil {
				return err
			}
			p, found, err := solver.Solve(cmd.Context())
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("no solution found")
				*exitCode = 1
				return nil
			}
			fmt.Printf("solution found: p = %d\n", p)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint16Var(&m, "m", uint16(defaults.M), "first evaluator argument")
	flags.Uint16Var(&n, "n", uint16(defaults.N), "second evaluator argument")
	flags.Uint16Var(&target, "target", uint16(defaults.Target), "result value to match")
	flags.Uint16Var(&from, "from", uint16(defaults.PStart), "first candidate, inclusive")
	flags.Uint16Var(&to, "to", uint16(defaults.PEnd), "last candidate, inclusive")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log scan progress to stderr")

	return cmd
}
