// Package commands implements the CLI commands for the matcache demo.
//
// The CLI is a thin usage harness around the library: it builds a holder,
// resolves the inverse twice (fresh compute, then cache hit), replaces the
// base matrix, and resolves once more — printing every step. All correctness
// lives in the memo and matrix packages; nothing here is core logic.
package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
)

// CLI wraps the cobra root command for the demo binary.
type CLI struct {
	rootCmd *cobra.Command
}

// New creates the CLI with its flags wired.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:   "matcache",
		Short: "Demonstrate the memoized matrix inverse",
		Long: "matcache builds a scaled identity matrix, resolves its inverse twice\n" +
			"(observing a fresh compute followed by a cache hit), then swaps the base\n" +
			"matrix and resolves again to show invalidation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().Int("size", 2, "dimension of the demo matrices")
	rootCmd.Flags().Float64("scale", 2.0, "diagonal value of the first base matrix")
	rootCmd.Flags().Float64("pivot-tolerance", matrix.DefaultPivotTolerance,
		"singularity bound forwarded to the inversion routine")

	c := &CLI{rootCmd: rootCmd}
	rootCmd.RunE = c.runDemo

	return c
}

// Execute runs the root command.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

// runDemo performs the documented scenario: resolve, resolve again, replace
// the base, resolve once more.
func (c *CLI) runDemo(cmd *cobra.Command, _ []string) error {
	size, _ := cmd.Flags().GetInt("size")
	scale, _ := cmd.Flags().GetFloat64("scale")
	pivotTol, _ := cmd.Flags().GetFloat64("pivot-tolerance")

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "matcache"})
	opts := []memo.Option{
		memo.WithLogger(logger),
		memo.WithInverseOptions(matrix.WithPivotTolerance(pivotTol)),
	}

	// Base #1: scale·I.
	base, err := scaledIdentity(size, scale)
	if err != nil {
		return err
	}
	h := memo.NewHolder(base)
	fmt.Printf("base matrix (%g·I):\n%v", scale, base)

	// First resolution: fresh compute (notice on stderr).
	inv, err := memo.Inverse(h, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("inverse:\n%v", inv)

	// Second resolution: cache hit, identical object.
	again, err := memo.Inverse(h, opts...)
	if err != nil {
		return err
	}
	fmt.Println("second resolution reused cached object:", inv == again)

	// Base #2: plain identity; the swap invalidates the cache.
	next, err := matrix.NewIdentity(size)
	if err != nil {
		return err
	}
	h.SetBase(next)
	inv2, err := memo.Inverse(h, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("inverse after base replacement:\n%v", inv2)

	return nil
}

// scaledIdentity builds scale·I of the requested dimension.
func scaledIdentity(n int, scale float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = m.Set(i, i, scale); err != nil {
			return nil, err
		}
	}

	return m, nil
}
