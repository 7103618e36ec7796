// Package main is the entry point for the devr CLI.
package main

import "devr.dev/pkg/devr/cmd"

func main() {
	cmd.Execute()
}
