package venues

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vowvenues/vowvenues/internal/cmdflags"
	"github.com/vowvenues/vowvenues/internal/importer"
	"github.com/vowvenues/vowvenues/internal/store"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "venues",
		Usage: "Commands to manage the venues collection",
		Subcommands: []*cli.Command{
			importCmd(),
		},
	}
}

func importCmd() *cli.Command {
	var input, mongoURI, database string
	var force bool
	return &cli.Command{
		Name:  "import",
		Usage: "Seed the venues collection from a tab-separated file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Path to the tab-separated venue file",
				Required:    true,
				Destination: &input,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Import even if the venues collection is not empty",
				Destination: &force,
			},
			cmdflags.MongoURI(&mongoURI),
			cmdflags.Database(&database),
		},
		Action: func(ctx *cli.Context) error {
			if mongoURI == "" {
				return store.ConfigError{Name: "MONGODB_URI"}
			}
			file, err := os.Open(input)
			if err != nil {
				return err
			}
			defer file.Close()
			cache := store.NewCache(store.DialMongo(mongoURI, database))
			_, err = importer.Run(ctx.Context, store.NewMongoVenues(cache), file, force)
			return err
		},
	}
}
