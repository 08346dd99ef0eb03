// Command linkset reports which columns of a table encode the same identity.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/linkset/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "linkset: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
