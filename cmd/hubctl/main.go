// Package main is the entry point for the hubctl sample CLI.
package main

import (
	"github.com/nuvias-uc/hubctl/cmd/hubctl/cmd"
)

func main() {
	cmd.Execute()
}
