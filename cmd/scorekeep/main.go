// Package main provides the scorekeep CLI, a local front end for the
// balance and ledger core.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scorekeep/scorekeep/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy onto CLI exit codes: user-correctable
// failures exit 1, system failures exit 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, types.ErrConflict):
		return exitUserError
	default:
		return exitSysError
	}
}
