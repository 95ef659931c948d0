package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/cookbook/internal"
	"github.com/starford/cookbook/internal/render"
	pkgconfig "github.com/starford/cookbook/pkg/config"
)

func defaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cookbook", "config.yaml")
	}
	return "config.yaml"
}

// loadApp builds the application from the config file plus command-line
// overrides. A missing config file falls back to the defaults.
func loadApp(cmd *cli.Command) (*internal.App, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if v := cmd.String("base-url"); v != "" {
		cfg.API.BaseURL = v
	}
	return internal.NewApp(cfg)
}

func main() {
	cmd := &cli.Command{
		Name:  "cookbook",
		Usage: "Terminal client for the recipe sharing service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   defaultConfigPath(),
				Sources: cli.EnvVars("COOKBOOK_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Recipe service base URL (overrides config)",
				Sources: cli.EnvVars("COOKBOOK_BASE_URL"),
			},
		},
		Commands: join(
			authCommands(),
			profileCommands(),
			feedCommands(),
			recipeCommands(),
			draftCommands(),
			commentCommands(),
		),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, render.Error(err.Error()))
		os.Exit(1)
	}
}

func join(groups ...[]*cli.Command) []*cli.Command {
	var out []*cli.Command
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
