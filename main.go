package main

import (
	"github.com/cine-cli/cine/cmd"
	"github.com/cine-cli/cine/config"
	"github.com/cine-cli/cine/internal/cache"
	"github.com/cine-cli/cine/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
