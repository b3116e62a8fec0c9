// Command invert reads a matrix from stdin and prints the inverse of a square matrix.
//
// Usage:
//
//	echo "2 2 1 2 3 4" | go run ./cmd/invert
package main

import (
	"os"

	"github.com/aouyang1/go-gauss/cli"
)

func main() {
	os.Exit(cli.Run(cli.OpInvert, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
