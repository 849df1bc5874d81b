// Package main is the entry point for the tintscan command.
package main

import (
	"github.com/samber/lo"
	"github.com/tintscan/tintscan/cmd"
	"github.com/tintscan/tintscan/config"
	"github.com/tintscan/tintscan/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
