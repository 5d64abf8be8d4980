// Package main is the entry point for the ytgrab application.
package main

import (
	"github.com/samber/lo"
	"github.com/ytgrab-cli/ytgrab/cmd"
	"github.com/ytgrab-cli/ytgrab/config"
	"github.com/ytgrab-cli/ytgrab/internal/cache"
	"github.com/ytgrab-cli/ytgrab/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Prune expired cache entries in the background.
	go cache.CollectGarbage()

	cmd.Execute()
}
