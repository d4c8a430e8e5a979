// Command easystate runs and inspects the reactive demo application.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/easystate/cmd/easystate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
