package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/starford/cookbook/internal"
	"github.com/starford/cookbook/internal/api"
	"github.com/starford/cookbook/internal/cache"
	"github.com/starford/cookbook/internal/models"
	"github.com/starford/cookbook/internal/render"
)

func feedCommands() []*cli.Command {
	pageFlags := []cli.Flag{
		&cli.IntFlag{Name: "limit", Usage: "Page size", Value: 20},
		&cli.IntFlag{Name: "offset", Usage: "Page offset"},
		&cli.BoolFlag{Name: "offline", Usage: "Serve from the local cache without contacting the service"},
	}

	return []*cli.Command{
		{
			Name:  "feed",
			Usage: "List recipes",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "topic", Usage: "Filter by topic (breakfast, lunch, dinner, desserts, ...)"},
				&cli.StringFlag{Name: "order", Usage: "Sort by creation time: desc or asc", Value: "desc"},
				&cli.StringFlag{Name: "q", Usage: "Search in titles and descriptions"},
			}, pageFlags...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				topic := models.Topic(cmd.String("topic"))
				if topic != "" && !topic.Valid() {
					return fmt.Errorf("unknown topic %q", topic)
				}

				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()

				if cmd.Bool("offline") {
					return printCachedFeed(app, cache.Query{
						Topic:  topic,
						Order:  cmd.String("order"),
						Search: cmd.String("q"),
						Limit:  int(cmd.Int("limit")),
						Offset: int(cmd.Int("offset")),
					})
				}

				recipes, err := app.Client.Feed(ctx, api.FeedQuery{
					Topic:  topic,
					Order:  cmd.String("order"),
					Query:  cmd.String("q"),
					Limit:  int(cmd.Int("limit")),
					Offset: int(cmd.Int("offset")),
				})
				if err != nil {
					return err
				}
				cacheRecipes(app, recipes)
				fmt.Println(render.Feed(recipes))
				return nil
			},
		},
		{
			Name:  "popular",
			Usage: "List recipes ordered by like count",
			Flags: pageFlags,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()

				limit, offset := int(cmd.Int("limit")), int(cmd.Int("offset"))
				if cmd.Bool("offline") {
					db, err := app.Cache()
					if err != nil {
						return err
					}
					rows, err := db.Popular(limit, offset)
					if err != nil {
						return err
					}
					fmt.Println(render.CachedFeed(rows, lastCachedAt(rows)))
					return nil
				}

				recipes, err := app.Client.Popular(ctx, limit, offset)
				if err != nil {
					return err
				}
				cacheRecipes(app, recipes)
				fmt.Println(render.Feed(recipes))
				return nil
			},
		},
	}
}

func printCachedFeed(app *internal.App, q cache.Query) error {
	db, err := app.Cache()
	if err != nil {
		return err
	}
	rows, err := db.List(q)
	if err != nil {
		return err
	}
	fmt.Println(render.CachedFeed(rows, lastCachedAt(rows)))
	return nil
}

// cacheRecipes refreshes the local cache after a successful fetch. Failures
// only degrade offline browsing, so they are logged and swallowed.
func cacheRecipes(app *internal.App, recipes []models.Recipe) {
	db, err := app.Cache()
	if err == nil {
		err = db.Put(recipes)
	}
	if err != nil {
		app.Logger.Warn("feed cache refresh failed", slog.String("error", err.Error()))
	}
}

func lastCachedAt(rows []cache.Row) time.Time {
	var last time.Time
	for _, r := range rows {
		if r.CachedAt.After(last) {
			last = r.CachedAt
		}
	}
	return last
}
