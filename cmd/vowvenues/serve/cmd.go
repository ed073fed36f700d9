package serve

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/vowvenues/vowvenues/internal/api"
	"github.com/vowvenues/vowvenues/internal/auth"
	"github.com/vowvenues/vowvenues/internal/cmdflags"
	"github.com/vowvenues/vowvenues/internal/httpserver"
	"github.com/vowvenues/vowvenues/internal/store"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7100"
	var mongoURI, database, secretVar string
	origins := cli.NewStringSlice("http://localhost:5173", "http://localhost:3000")
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the venue booking API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind the API server",
				Value:       bindAddr,
				Destination: &bindAddr,
			},
			&cli.StringSliceFlag{
				Name:        "allowed-origin",
				Usage:       "Origin allowed to call the API with credentials (repeatable)",
				Destination: origins,
			},
			cmdflags.MongoURI(&mongoURI),
			cmdflags.Database(&database),
			cmdflags.SecretEnvVar(&secretVar),
		},
		Action: func(ctx *cli.Context) error {
			secret, err := auth.SecretFromEnv(secretVar, nil, nil)
			if err != nil {
				return err
			}
			tokens, err := auth.NewTokens(secret)
			if err != nil {
				return err
			}
			if mongoURI == "" {
				return store.ConfigError{Name: "MONGODB_URI"}
			}
			cache := store.NewCache(store.DialMongo(mongoURI, database))
			srv := api.NewServer(
				store.NewMongoUsers(cache),
				store.NewMongoVenues(cache),
				tokens,
				func(ctx context.Context) error {
					_, err := cache.Acquire(ctx)
					return err
				},
			)
			return httpserver.Serve(ctx.Context, bindAddr, srv.Handler(origins.Value()))
		},
	}
}
