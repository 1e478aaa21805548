// Command lvsort sorts and searches integers from the command line and runs
// the benchmark harness.
package main

import (
	"os"

	"github.com/katalvlaran/lvsort/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
