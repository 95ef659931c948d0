package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/cookbook/internal/api"
	"github.com/starford/cookbook/internal/render"
)

func profileCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "whoami",
			Usage: "Show the current user's profile and recipes",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()
				p, err := app.Client.Me(ctx)
				if err != nil {
					return err
				}
				fmt.Println(render.Profile(p))
				return nil
			},
		},
		{
			Name:  "profile",
			Usage: "View and edit profiles",
			Commands: []*cli.Command{
				{
					Name:      "show",
					Usage:     "Show a user's public profile",
					ArgsUsage: "USER_ID",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						id, err := argID(cmd, 0, "user id")
						if err != nil {
							return err
						}
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						p, err := app.Client.PublicProfile(ctx, id)
						if err != nil {
							return err
						}
						fmt.Println(render.Profile(p))
						return nil
					},
				},
				{
					Name:  "update",
					Usage: "Change nickname, full name, or avatar",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "nickname", Usage: "New nickname"},
						&cli.StringFlag{Name: "full-name", Usage: "New full name"},
						&cli.StringFlag{Name: "photo", Usage: "Local image to upload as the new avatar"},
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						var upd api.ProfileUpdate
						if cmd.IsSet("nickname") {
							v := cmd.String("nickname")
							upd.Nickname = &v
						}
						if cmd.IsSet("full-name") {
							v := cmd.String("full-name")
							upd.FullName = &v
						}
						upd.PhotoPath = cmd.String("photo")
						if upd.Nickname == nil && upd.FullName == nil && upd.PhotoPath == "" {
							return fmt.Errorf("nothing to update")
						}

						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						u, err := app.Client.UpdateProfile(ctx, upd)
						if err != nil {
							return err
						}
						fmt.Printf("profile updated: %s\n", u.Email)
						return nil
					},
				},
				{
					Name:  "avatar",
					Usage: "Manage the profile photo",
					Commands: []*cli.Command{
						{
							Name:      "set",
							Usage:     "Upload a new profile photo",
							ArgsUsage: "FILE",
							Action: func(ctx context.Context, cmd *cli.Command) error {
								path, err := argString(cmd, 0, "image path")
								if err != nil {
									return err
								}
								app, err := loadApp(cmd)
								if err != nil {
									return err
								}
								defer app.Close()
								stored, err := app.Client.UploadAvatar(ctx, path)
								if err != nil {
									return err
								}
								fmt.Printf("avatar updated: %s\n", stored)
								return nil
							},
						},
						{
							Name:  "rm",
							Usage: "Remove the profile photo",
							Action: func(ctx context.Context, cmd *cli.Command) error {
								app, err := loadApp(cmd)
								if err != nil {
									return err
								}
								defer app.Close()
								if err := app.Client.DeleteAvatar(ctx); err != nil {
									return err
								}
								fmt.Println("avatar removed")
								return nil
							},
						},
					},
				},
				{
					Name:  "change-password",
					Usage: "Replace the account password",
					Action: func(ctx context.Context, cmd *cli.Command) error {
						app, err := loadApp(cmd)
						if err != nil {
							return err
						}
						defer app.Close()
						oldPassword, err := promptSecret("Current password")
						if err != nil {
							return err
						}
						newPassword, err := promptSecret("New password")
						if err != nil {
							return err
						}
						msg, err := app.Client.ChangePassword(ctx, oldPassword, newPassword)
						if err != nil {
							return err
						}
						fmt.Println(msg)
						return nil
					},
				},
			},
		},
	}
}
