// Package cmdflags holds the CLI flags shared by more than one subcommand.
package cmdflags

import (
	"github.com/urfave/cli/v2"

	"github.com/vowvenues/vowvenues/internal/auth"
)

func MongoURI(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "mongodb-uri",
		Usage:       "Connection string for the document database",
		EnvVars:     []string{"MONGODB_URI"},
		Destination: out,
		Value:       *out,
	}
}

func Database(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = "vowvenues"
	}
	return &cli.StringFlag{
		Name:        "database",
		Aliases:     []string{"db"},
		Usage:       "Name of the database holding the users and venues collections",
		Destination: out,
		Value:       *out,
	}
}

func SecretEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = auth.SecretEnvVar
	}
	return &cli.StringFlag{
		Name:        "jwt-secret-envvar-name",
		Usage:       "Name of the environment variable that holds the token-signing secret. The secret itself should not be passed as an argument",
		Destination: out,
		Value:       *out,
	}
}
