package main

import (
	"context"
	"log"
	"os"

	"github.com/avoronkov/wellfinder/internal/buildinfo"
	"github.com/avoronkov/wellfinder/internal/client/cli"
	"github.com/avoronkov/wellfinder/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
