package main

import (
	"context"
	"log"
	"os"

	"github.com/warlord-os/warlord/internal/buildinfo"
	"github.com/warlord-os/warlord/internal/cli"
	"github.com/warlord-os/warlord/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
