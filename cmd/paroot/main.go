// Package main is the paroot command: it asks for one typed value and prints
// it, so shell scripts get the same retry-until-valid prompts as Go programs.
package main

import "github.com/nao1215/paroot/internal/cli"

func main() {
	cli.Execute()
}
