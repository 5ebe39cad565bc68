// Package main is the entry point for the relint CLI.
package main

import "relint.dev/pkg/relint/cmd"

func main() {
	cmd.Execute()
}
