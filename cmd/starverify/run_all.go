package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
)

// newRunAllCmd is convenience sugar, not part of the core single-process
// contract (spec §5): it launches parallel_num_jobs independent child
// processes of this same binary, one per job number, and aggregates
// their results the way the spec assigns to an external responsibility
// (summing num_precolorings, OR-ing failure outcomes).
func newRunAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-all <input_file> <parallel_num_jobs> <parallel_depth>",
		Short: "Run every shard of a parallel split as child processes and aggregate the results",
		Args:  cobra.ExactArgs(3),
		RunE:  runAll,
	}
	return cmd
}

var precoloringsRe = regexp.MustCompile(`num_precolorings=(\d+)`)

func runAll(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	numJobs, err := parseNonNegInt(args[1])
	if err != nil {
		return fmt.Errorf("parallel_num_jobs: %w", err)
	}
	depth, err := parseNonNegInt(args[2])
	if err != nil {
		return fmt.Errorf("parallel_depth: %w", err)
	}
	if numJobs < 1 {
		return fmt.Errorf("parallel_num_jobs must be positive")
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating self: %w", err)
	}

	var totalPrecolorings int64
	anyFailure := false
	worstCode := exitSuccess

	for job := 0; job < numJobs; job++ {
		shardArgs := []string{inputFile, strconv.Itoa(job), strconv.Itoa(numJobs), strconv.Itoa(depth)}
		c := exec.Command(self, shardArgs...)
		var stdout bytes.Buffer
		c.Stdout = &stdout
		c.Stderr = cmd.ErrOrStderr()

		runErr := c.Run()
		code := exitSuccess
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else if runErr != nil {
			return fmt.Errorf("job %d: %w", job, runErr)
		}

		// The last num_precolorings= match is the shard's final summary
		// line; earlier matches are progress dumps.
		if ms := precoloringsRe.FindAllSubmatch(stdout.Bytes(), -1); len(ms) > 0 {
			n, _ := strconv.ParseInt(string(ms[len(ms)-1][1]), 10, 64)
			totalPrecolorings += n
		}

		switch code {
		case exitSuccess:
		case exitFailure:
			anyFailure = true
		default:
			worstCode = exitInstanceError
		}
		fmt.Fprint(cmd.OutOrStdout(), stdout.String())
	}

	if worstCode == exitInstanceError {
		return &exitCodeError{code: exitInstanceError, err: fmt.Errorf("a shard reported an instance error")}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "aggregate: num_precolorings=%d\n", totalPrecolorings)
	if anyFailure {
		return &exitCodeError{code: exitFailure, err: fmt.Errorf("at least one shard found an unextendable precoloring")}
	}
	return nil
}
