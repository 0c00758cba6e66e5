// Command carlo is a thin CLI shell over the internal/session library:
// give it source text, get back a rendering. It grows no language
// semantics of its own.
package main

import (
	"fmt"
	"os"

	"github.com/hobbsbros/carlo/cmd/carlo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "carlo: %v\n", err)
		os.Exit(1)
	}
}
