package main

import (
	"fmt"
	"os"

	"github.com/roach88/dseq/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dseq: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
