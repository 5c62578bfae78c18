package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	app := &cli.Command{
		Name:    "clickops",
		Version: Version,
		Usage:   "Query the DigitalOcean 1-Click application catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "token",
				Usage: "DigitalOcean API token (falls back to DIGITALOCEAN_TOKEN)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a clickops config file",
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "Override the DigitalOcean API endpoint",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			listCmd,
			runCmd,
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("clickops version %s\n", cmd.Root().Version)
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
