// Command sle reads a matrix from stdin and prints the roots of a linear system given as an n x (n+1) augmented matrix.
//
// Usage:
//
//	echo "2 3 1 0 5 0 1 3" | go run ./cmd/sle
package main

import (
	"os"

	"github.com/aouyang1/go-gauss/cli"
)

func main() {
	os.Exit(cli.Run(cli.OpSolve, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
