package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/vowvenues/vowvenues/cmd/vowvenues/serve"
	"github.com/vowvenues/vowvenues/cmd/vowvenues/venues"
	"github.com/vowvenues/vowvenues/internal/logutil"
)

func main() {
	// a missing .env is the normal case outside local development
	godotenv.Load()
	app := &cli.App{
		Name:  "vowvenues",
		Usage: "Venue booking API server and tooling",
		Commands: []*cli.Command{
			serve.Cmd(),
			venues.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = logutil.WithLogger(ctx, logutil.Service("vowvenues"))
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
