package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/cookbook/internal/render"
)

func commentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "comment",
			Usage: "Read and write recipe comments",
			Commands: []*cli.Command{
				{
					Name:      "list",
					Usage:     "List a recipe's comments",
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
						comments, err := app.Client.Comments(ctx, id)
						if err != nil {
							return err
						}
						fmt.Println(render.Comments(comments))
						return nil
					},
				},
				{
					Name:      "add",
					Usage:     "Comment on a recipe",
					ArgsUsage: "RECIPE_ID TEXT",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						id, err := argID(cmd, 0, "recipe id")
						if err != nil {
							return err
						}
						text, err := argString(cmd, 1, "comment text")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						c, err := app.Client.AddComment(ctx, id, text)
						if err != nil {
							return err
						}
						fmt.Printf("comment #%d added\n", c.ID)
						return nil
					},
				},
				{
					Name:      "edit",
					Usage:     "Replace your comment's text",
					ArgsUsage: "RECIPE_ID COMMENT_ID TEXT",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						recipeID, err := argID(cmd, 0, "recipe id")
						if err != nil {
							return err
						}
						commentID, err := argID(cmd, 1, "comment id")
						if err != nil {
							return err
						}
						text, err := argString(cmd, 2, "comment text")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						if _, err := app.Client.EditComment(ctx, recipeID, commentID, text); err != nil {
							return err
						}
						fmt.Printf("comment #%d updated\n", commentID)
						return nil
					},
				},
				{
					Name:      "rm",
					Usage:     "Delete a comment (yours, or any on your recipe)",
					ArgsUsage: "RECIPE_ID COMMENT_ID",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						recipeID, err := argID(cmd, 0, "recipe id")
						if err != nil {
							return err
						}
						commentID, err := argID(cmd, 1, "comment id")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						if err := app.Client.DeleteComment(ctx, recipeID, commentID); err != nil {
							return err
						}
						fmt.Printf("comment #%d deleted\n", commentID)
						return nil
					},
				},
			},
		},
	}
}
