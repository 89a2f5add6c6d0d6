// Package main is the entry point for the movekit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/movekit/cli/internal/cmd"
	mkerrors "github.com/movekit/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *mkerrors.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(mkerrors.ExitCodeFromError(err))
	}
}
