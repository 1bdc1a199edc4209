// ABOUTME: Positional argument parsing: exactly <output-path> <sample-count>, no flags
// ABOUTME: Every argument is taken literally, so paths starting with '-' are accepted

package main

import (
	"errors"
	"fmt"
	"strconv"
)

const usageLine = "usage: keywave <output-path> <sample-count>"

var (
	errArgCount     = errors.New(usageLine)
	errInvalidCount = errors.New("invalid sample count")
)

type cliArgs struct {
	output  string
	samples int
}

// parseArgs validates argv (without the program name). Only the number
// of arguments and the sample count are checked; the output path is
// checked when the file is created.
func parseArgs(argv []string) (cliArgs, error) {
	switch {
	case len(argv) < 2:
		return cliArgs{}, fmt.Errorf("too few arguments provided: %w", errArgCount)
	case len(argv) > 2:
		return cliArgs{}, fmt.Errorf("too many arguments provided: %w", errArgCount)
	}

	n, err := parseSampleCount(argv[1])
	if err != nil {
		return cliArgs{}, err
	}
	return cliArgs{output: argv[0], samples: n}, nil
}

// parseSampleCount accepts a non-negative base-10 integer. Zero is a
// valid request for an empty wave file.
func parseSampleCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w %q", errInvalidCount, s)
	}
	return n, nil
}
