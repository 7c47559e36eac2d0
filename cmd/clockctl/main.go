// Command clockctl inspects clock projects: it resolves drift.yaml, checks the
// bundled assets and runs headless layout passes.
package main

import (
	"fmt"
	"os"

	"github.com/vectornator/clocks/cmd/clockctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
