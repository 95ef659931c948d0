package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
)

// promptSecret asks for a value without echoing it. Used for passwords when
// the corresponding flag is not given.
func promptSecret(title string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			EchoMode(huh.EchoModePassword).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return value, nil
}

// argID parses the positional argument at pos as a numeric id.
func argID(cmd *cli.Command, pos int, what string) (int64, error) {
	raw := cmd.Args().Get(pos)
	if raw == "" {
		return 0, fmt.Errorf("missing %s argument", what)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return id, nil
}

// argRow parses a 1-based row number argument into a 0-based index.
func argRow(cmd *cli.Command, pos int, what string) (int, error) {
	raw := cmd.Args().Get(pos)
	if raw == "" {
		return 0, fmt.Errorf("missing %s argument", what)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q (rows are numbered from 1)", what, raw)
	}
	return n - 1, nil
}

// argString returns the positional argument at pos, failing when absent.
func argString(cmd *cli.Command, pos int, what string) (string, error) {
	raw := cmd.Args().Get(pos)
	if raw == "" {
		return "", fmt.Errorf("missing %s argument", what)
	}
	return raw, nil
}
