// Command starverify verifies precoloring-extension claims for small,
// highly symmetric graphs: it loads an instance file, runs the
// backtracking search engine, and reports whether every admissible
// precoloring of the precolored prefix extends to a full star-coloring.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starverify/instance"
	"github.com/katalvlaran/starverify/search"
)

// Exit codes per the external interface contract.
const (
	exitSuccess        = 0
	exitFailure        = 1
	exitInstanceError  = 99
	exitUsageOrMissing = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		return exitUsageOrMissing
	}
	return exitSuccess
}

// exitCodeError lets RunE communicate a specific process exit code
// through cobra's ordinary error return without cobra printing a
// redundant usage message for instance/engine errors (only argument
// errors get that treatment, via cobra's own Args validators).
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "starverify <input_file> <parallel_job_number> <parallel_num_jobs> <parallel_depth>",
		Short:         "Verify a star-coloring precoloring extension claim",
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  false,
		SilenceErrors: true,
		RunE:          runVerify,
	}
	root.AddCommand(newGenCmd())
	root.AddCommand(newRunAllCmd())
	return root
}

func runVerify(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	jobNumber, err := parseNonNegInt(args[1])
	if err != nil {
		return fmt.Errorf("parallel_job_number: %w", err)
	}
	numJobs, err := parseNonNegInt(args[2])
	if err != nil {
		return fmt.Errorf("parallel_num_jobs: %w", err)
	}
	depth, err := parseNonNegInt(args[3])
	if err != nil {
		return fmt.Errorf("parallel_depth: %w", err)
	}

	// Arguments are valid from here on: later errors are instance or
	// engine errors and get no usage message.
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()

	inst, err := instance.LoadFile(inputFile, instance.WithAck(out))
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return &exitCodeError{code: exitInstanceError, err: err}
	}

	eng, err := search.New(inst, jobNumber, numJobs, depth, search.WithReporter(search.NewReporter(out)))
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return &exitCodeError{code: exitUsageOrMissing, err: err}
	}

	res := eng.Run()
	if res.Success {
		return nil
	}
	return &exitCodeError{code: exitFailure, err: fmt.Errorf("verification failed: %d failures", res.NumFailures)}
}

func parseNonNegInt(s string) (int, error) {
	var v int
	_, err := fmt.Sscanf(s, "%d", &v)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("must be nonnegative: %q", s)
	}
	return v, nil
}
