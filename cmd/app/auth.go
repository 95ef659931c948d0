package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func authCommands() []*cli.Command {
	emailFlag := &cli.StringFlag{
		Name:     "email",
		Aliases:  []string{"e"},
		Usage:    "Account email",
		Required: true,
	}
	passwordFlag := &cli.StringFlag{
		Name:  "password",
		Usage: "Account password (prompted when omitted)",
	}

	return []*cli.Command{
		{
			Name:  "login",
			Usage: "Log in and store the session credential",
			Flags: []cli.Flag{emailFlag, passwordFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()
				password, err := flagOrSecret(cmd, "password", "Password")
				if err != nil {
					return err
				}
				if err := app.Client.Login(ctx, cmd.String("email"), password); err != nil {
					return err
				}
				fmt.Println("logged in")
				return nil
			},
		},
		{
			Name:  "logout",
			Usage: "Invalidate the session and forget the stored credential",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()
				if err := app.Client.Logout(ctx); err != nil {
					return err
				}
				fmt.Println("logged out")
				return nil
			},
		},
		{
			Name:  "register",
			Usage: "Create an account; a verification code is emailed",
			Flags: []cli.Flag{emailFlag, passwordFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()
				password, err := flagOrSecret(cmd, "password", "Password")
				if err != nil {
					return err
				}
				msg, err := app.Client.Register(ctx, cmd.String("email"), password)
				if err != nil {
					return err
				}
				fmt.Println(msg)
				return nil
			},
		},
		{
			Name:      "verify",
			Usage:     "Confirm the emailed code and activate the account",
			ArgsUsage: "CODE",
			Flags:     []cli.Flag{emailFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				code, err := argString(cmd, 0, "verification code")
				if err != nil {
					return err
				}
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()
				if err := app.Client.Verify(ctx, cmd.String("email"), code); err != nil {
					return err
				}
				fmt.Println("account verified, logged in")
				return nil
			},
		},
		{
			Name:      "forgot-password",
			Usage:     "Request a password reset link",
			ArgsUsage: "EMAIL",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				email, err := argString(cmd, 0, "email")
				if err != nil {
					return err
				}
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()
				msg, err := app.Client.ForgotPassword(ctx, email)
				if err != nil {
					return err
				}
				fmt.Println(msg)
				return nil
			},
		},
		{
			Name:      "reset-password",
			Usage:     "Set a new password using a reset token",
			ArgsUsage: "TOKEN",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "new-password", Usage: "New password (prompted when omitted)"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				token, err := argString(cmd, 0, "reset token")
				if err != nil {
					return err
				}
				app, err := loadApp(cmd)
				if err != nil {
					return err
				}
				defer app.Close()

				valid, err := app.Client.InspectResetToken(ctx, token)
				if err != nil {
					return err
				}
				if !valid {
					return fmt.Errorf("reset token is expired or already used")
				}

				password, err := flagOrSecret(cmd, "new-password", "New password")
				if err != nil {
					return err
				}
				msg, err := app.Client.ResetPassword(ctx, token, password)
				if err != nil {
					return err
				}
				fmt.Println(msg)
				return nil
			},
		},
	}
}

func flagOrSecret(cmd *cli.Command, flag, title string) (string, error) {
	if v := cmd.String(flag); v != "" {
		return v, nil
	}
	return promptSecret(title)
}
