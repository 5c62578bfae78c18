package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mamercad/clickops/internal/config"
	"github.com/mamercad/clickops/internal/doapi"
	"github.com/mamercad/clickops/internal/modules"
	_ "github.com/mamercad/clickops/internal/modules/oneclicks"
	"github.com/mamercad/clickops/internal/types"
)

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "List available 1-Click applications",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "Limit by type of 1-Click application (droplet or kubernetes)",
		},
	},
	Action: listAction,
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	clickType := cmd.String("type")
	if clickType != "" {
		if _, err := types.ParseClickType(clickType); err != nil {
			return err
		}
	}

	client, err := buildClient(cmd)
	if err != nil {
		return err
	}

	m, ok := modules.Get("one_clicks_info")
	if !ok {
		return fmt.Errorf("module one_clicks_info is not registered")
	}

	res := m.Run(ctx, client, types.QueryDefinition{Type: clickType})
	if err := printResults(res); err != nil {
		return err
	}
	if res.Failed {
		return cli.Exit("", 1)
	}
	return nil
}

// buildClient resolves configuration (flags win over env and config file) and
// constructs the API client.
func buildClient(cmd *cli.Command) (*doapi.Client, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if token := cmd.String("token"); token != "" {
		cfg.Token = token
	}
	if apiURL := cmd.String("api-url"); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	SetupLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return doapi.NewClient(cfg.ClientConfig())
}

func printResults(results ...types.ModuleResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	}
	return nil
}
