package main

import (
	"os"

	"github.com/conneroisu/subsea/cmd"
	suberrors "github.com/conneroisu/subsea/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(suberrors.ExitCode(err))
	}
}
