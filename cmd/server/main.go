package main

import (
	"log"

	"github.com/avoronkov/wellfinder/internal/server"
	"github.com/avoronkov/wellfinder/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()
	app := server.NewApp(cfg)

	if err := app.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
