package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/cookbook/internal"
	"github.com/starford/cookbook/internal/draft"
	"github.com/starford/cookbook/internal/models"
	"github.com/starford/cookbook/internal/render"
)

func draftCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "draft",
			Usage: "Manage local recipe drafts",
			Commands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List saved drafts",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						names, err := app.Drafts.List()
						if err != nil {
							return err
						}
						if len(names) == 0 {
							fmt.Println("no drafts")
							return nil
						}
						for _, name := range names {
							fmt.Println(name)
						}
						return nil
					},
				},
				{
					Name:      "show",
					Usage:     "Print a draft",
					ArgsUsage: "NAME",
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
						fmt.Println(render.Draft(name, d))
						return nil
					},
				},
				{
					Name:      "new",
					Usage:     "Create an empty draft",
					ArgsUsage: "NAME",
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
						if err := app.Drafts.Save(name, draft.New()); err != nil {
							return err
						}
						fmt.Printf("draft %q created\n", name)
						return nil
					},
				},
				{
					Name:      "rm",
					Usage:     "Delete a draft",
					ArgsUsage: "NAME",
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
						if err := app.Drafts.Delete(name); err != nil {
							return err
						}
						fmt.Printf("draft %q deleted\n", name)
						return nil
					},
				},
				{
					Name:      "set",
					Usage:     "Change a draft's title, description, or topic",
					ArgsUsage: "NAME",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "title"},
						&cli.StringFlag{Name: "description"},
						&cli.StringFlag{Name: "topic", Usage: "Topic code (breakfast, lunch, dinner, desserts, ...)"},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return editDraft(cmd, func(d *draft.Draft) error {
							if cmd.IsSet("title") {
								d.Title = cmd.String("title")
							}
							if cmd.IsSet("description") {
								d.Description = cmd.String("description")
							}
							if cmd.IsSet("topic") {
								topic := models.Topic(cmd.String("topic"))
								if !topic.Valid() {
									return fmt.Errorf("unknown topic %q", topic)
								}
								d.Topic = topic
							}
							return nil
						})
					},
				},
				{
					Name:      "check",
					Usage:     "Validate a draft without submitting it",
					ArgsUsage: "NAME",
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
						if err := d.Validate(); err != nil {
							return fmt.Errorf("draft %q: %w", name, err)
						}
						fmt.Printf("draft %q is ready to submit\n", name)
						return nil
					},
				},
				{
					Name:  "watch",
					Usage: "Re-validate drafts as their files change, until interrupted",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						return draft.Watch(ctx, app.Drafts, app.Logger, func(res draft.CheckResult) {
							if res.Err != nil {
								fmt.Println(render.Error(fmt.Sprintf("%s: %s", res.Name, res.Err)))
								return
							}
							fmt.Printf("%s: ok\n", res.Name)
						})
					},
				},
				ingredientCommands(),
				stepCommands(),
				coverCommand(),
			},
		},
	}
}

func ingredientCommands() *cli.Command {
	return &cli.Command{
		Name:  "ingredient",
		Usage: "Edit a draft's ingredient list",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Append an ingredient row",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Ingredient name"},
					&cli.StringFlag{Name: "quantity", Usage: "Amount, free-form"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return editDraft(cmd, func(d *draft.Draft) error {
						d.AddIngredient()
						row := len(d.Ingredients) - 1
						if err := d.SetIngredientName(row, cmd.String("name")); err != nil {
							return err
						}
						return d.SetIngredientQuantity(row, cmd.String("quantity"))
					})
				},
			},
			{
				Name:      "set",
				Usage:     "Change an ingredient row",
				ArgsUsage: "NAME ROW",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Ingredient name"},
					&cli.StringFlag{Name: "quantity", Usage: "Amount, free-form"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					row, err := argRow(cmd, 1, "row number")
					if err != nil {
						return err
					}
					return editDraft(cmd, func(d *draft.Draft) error {
						if cmd.IsSet("name") {
							if err := d.SetIngredientName(row, cmd.String("name")); err != nil {
								return err
							}
						}
						if cmd.IsSet("quantity") {
							return d.SetIngredientQuantity(row, cmd.String("quantity"))
						}
						return nil
					})
				},
			},
			{
				Name:      "rm",
				Usage:     "Remove an ingredient row",
				ArgsUsage: "NAME ROW",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					row, err := argRow(cmd, 1, "row number")
					if err != nil {
						return err
					}
					return editDraft(cmd, func(d *draft.Draft) error {
						return d.RemoveIngredient(row)
					})
				},
			},
		},
	}
}

func stepCommands() *cli.Command {
	return &cli.Command{
		Name:  "step",
		Usage: "Edit a draft's cooking steps",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Append a step",
				ArgsUsage: "NAME [TEXT]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return editDraft(cmd, func(d *draft.Draft) error {
						d.AddStep()
						return d.SetStepText(len(d.Steps)-1, cmd.Args().Get(1))
					})
				},
			},
			{
				Name:      "set",
				Usage:     "Replace a step's text",
				ArgsUsage: "NAME ROW TEXT",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					row, err := argRow(cmd, 1, "step number")
					if err != nil {
						return err
					}
					text, err := argString(cmd, 2, "step text")
					if err != nil {
						return err
					}
					return editDraft(cmd, func(d *draft.Draft) error {
						return d.SetStepText(row, text)
					})
				},
			},
			{
				Name:      "rm",
				Usage:     "Remove a step and its image slot",
				ArgsUsage: "NAME ROW",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					row, err := argRow(cmd, 1, "step number")
					if err != nil {
						return err
					}
					return editDraft(cmd, func(d *draft.Draft) error {
						return d.RemoveStep(row)
					})
				},
			},
			{
				Name:      "attach",
				Usage:     "Attach a local image to a step, replacing any previous one",
				ArgsUsage: "NAME ROW FILE",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					row, err := argRow(cmd, 1, "step number")
					if err != nil {
						return err
					}
					path, err := argString(cmd, 2, "image path")
					if err != nil {
						return err
					}
					return editDraft(cmd, func(d *draft.Draft) error {
						return d.AttachStepImage(row, path)
					})
				},
			},
			{
				Name:      "clear-image",
				Usage:     "Empty a step's image slot",
				ArgsUsage: "NAME ROW",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					row, err := argRow(cmd, 1, "step number")
					if err != nil {
						return err
					}
					return editDraft(cmd, func(d *draft.Draft) error {
						return d.ClearStepImage(row)
					})
				},
			},
		},
	}
}

func coverCommand() *cli.Command {
	return &cli.Command{
		Name:      "cover",
		Usage:     "Attach or clear the cover image",
		ArgsUsage: "NAME [FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "clear", Usage: "Remove the cover image"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return editDraft(cmd, func(d *draft.Draft) error {
				if cmd.Bool("clear") {
					d.ClearCover()
					return nil
				}
				path, err := argString(cmd, 1, "image path")
				if err != nil {
					return err
				}
				d.AttachCover(path)
				return nil
			})
		},
	}
}

// editDraft loads the named draft, applies fn, and saves the result. The
// draft file is only rewritten when fn succeeds.
func editDraft(cmd *cli.Command, fn func(*draft.Draft) error) error {
	name, err := argString(cmd, 0, "draft name")
	if err != nil {
		return err
	}
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()
	return withDraft(app, name, fn)
}

func withDraft(app *internal.App, name string, fn func(*draft.Draft) error) error {
	d, err := app.Drafts.Load(name)
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	return app.Drafts.Save(name, d)
}
