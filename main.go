// Package main is the entry point for the anidb command.
package main

import (
	"github.com/anisan-cli/anidb/cmd"
	"github.com/anisan-cli/anidb/config"
	"github.com/anisan-cli/anidb/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
