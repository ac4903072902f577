package main

import (
	"context"
	"log"

	"github.com/codebyfaisal/e-store-pos/internal/client/cli"
	"github.com/codebyfaisal/e-store-pos/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
