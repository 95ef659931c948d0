package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/starford/cookbook/internal"
	"github.com/starford/cookbook/internal/compose"
	"github.com/starford/cookbook/internal/draft"
	"github.com/starford/cookbook/internal/render"
)

func recipeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "recipe",
			Usage: "View, author, and manage recipes",
			Commands: []*cli.Command{
				{
					Name:      "show",
					Usage:     "Show a recipe with its comments",
					ArgsUsage: "RECIPE_ID",
					Flags: []cli.Flag{
						&cli.BoolFlag{Name: "no-comments", Usage: "Skip fetching comments"},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						id, err := argID(cmd, 0, "recipe id")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()

						if cmd.Bool("no-comments") {
							r, err := app.Client.Recipe(ctx, id)
							if err != nil {
								return err
							}
							fmt.Println(render.Recipe(r, nil))
							return nil
						}
						r, comments, err := app.Client.RecipeWithComments(ctx, id)
						if err != nil {
							return err
						}
						fmt.Println(render.Recipe(r, comments))
						return nil
					},
				},
				{
					Name:      "new",
					Usage:     "Compose a recipe interactively and save it as a draft",
					ArgsUsage: "DRAFT_NAME",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						name, err := argString(cmd, 0, "draft name")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()

						d := draft.New()
						if err := compose.Run(d); err != nil {
							return err
						}
						if err := app.Drafts.Save(name, d); err != nil {
							return err
						}
						fmt.Printf("draft %q saved; submit with: cookbook recipe submit %s\n", name, name)
						return nil
					},
				},
				{
					Name:      "edit",
					Usage:     "Fetch a recipe you authored into a local draft for editing",
					ArgsUsage: "RECIPE_ID [DRAFT_NAME]",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						id, err := argID(cmd, 0, "recipe id")
						if err != nil {
							return err
						}
						name := cmd.Args().Get(1)
						if name == "" {
							name = "recipe-" + strconv.FormatInt(id, 10)
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()

						r, err := app.Client.Recipe(ctx, id)
						if err != nil {
							return err
						}
						d := draft.FromRecipe(r)
						if err := app.Drafts.Save(name, d); err != nil {
							return err
						}
						fmt.Printf("draft %q created from recipe #%d\n", name, id)
						return nil
					},
				},
				{
					Name:      "submit",
					Usage:     "Validate a draft and send it to the service",
					ArgsUsage: "DRAFT_NAME",
					Flags: []cli.Flag{
						&cli.BoolFlag{Name: "keep", Usage: "Keep the draft file after a successful submit"},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						name, err := argString(cmd, 0, "draft name")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()

						d, err := app.Drafts.Load(name)
						if err != nil {
							return err
						}
						r, err := app.Client.SubmitDraft(ctx, d)
						if err != nil {
							return err
						}
						if d.Editing() {
							fmt.Printf("recipe #%d updated\n", r.ID)
						} else {
							fmt.Printf("recipe #%d published\n", r.ID)
						}
						if !cmd.Bool("keep") {
							if err := app.Drafts.Delete(name); err != nil {
								app.Logger.Warn("draft cleanup failed",
									slog.String("name", name), slog.String("error", err.Error()))
							}
						}
						return nil
					},
				},
				{
					Name:      "delete",
					Usage:     "Delete a recipe you authored",
					ArgsUsage: "RECIPE_ID",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						id, err := argID(cmd, 0, "recipe id")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()

						if err := app.Client.DeleteRecipe(ctx, id); err != nil {
							return err
						}
						dropCached(app, id)
						fmt.Printf("recipe #%d deleted\n", id)
						return nil
					},
				},
			},
		},
		{
			Name:      "like",
			Usage:     "Toggle your like on a recipe",
			ArgsUsage: "RECIPE_ID",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				id, err := argID(cmd, 0, "recipe id")
				if err != nil {
					return err
				}
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()

				res, err := app.Client.ToggleLike(ctx, id)
				if err != nil {
					return err
				}
				if db, cerr := app.Cache(); cerr == nil {
					if err := db.SetLike(id, res.Liked, res.LikesCount); err != nil {
						app.Logger.Warn("like cache update failed", slog.String("error", err.Error()))
					}
				}
				if res.Liked {
					fmt.Printf("liked, %d total\n", res.LikesCount)
				} else {
					fmt.Printf("like removed, %d total\n", res.LikesCount)
				}
				return nil
			},
		},
	}
}

func dropCached(app *internal.App, id int64) {
	db, err := app.Cache()
	if err == nil {
		err = db.Delete(id)
	}
	if err != nil {
		app.Logger.Warn("cache delete failed", slog.String("error", err.Error()))
	}
}
