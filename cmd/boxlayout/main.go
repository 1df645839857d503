// Command boxlayout measures and arranges layout documents.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/boxlayout/cmd/boxlayout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
