package main

import (
	"fmt"
	"os"

	"github.com/roach88/legacyrand/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "legacyrand: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
