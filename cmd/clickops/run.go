package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mamercad/clickops/internal/playbook"
)

var runCmd = &cli.Command{
	Name:      "run",
	Usage:     "Run the catalog queries from a YAML query file",
	ArgsUsage: "<queries.yaml>",
	Action:    runAction,
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("query file path required")
	}
	path := cmd.Args().Get(0)

	client, err := buildClient(cmd)
	if err != nil {
		return err
	}

	pb, err := playbook.Load(path)
	if err != nil {
		return err
	}

	runner := &playbook.Runner{Catalog: client, Logger: slog.Default()}
	results := runner.Run(ctx, pb)
	if err := printResults(results...); err != nil {
		return err
	}

	for _, res := range results {
		if res.Failed {
			return cli.Exit("", 1)
		}
	}
	return nil
}
