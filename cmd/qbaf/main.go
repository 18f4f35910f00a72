package main

import (
	"fmt"
	"os"

	"github.com/filipnaudot/Quantitative-Bipolar-Argumentation/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
