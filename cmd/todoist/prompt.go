package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// promptToken asks for the API token interactively, with echo disabled so
// the token does not land in scrollback. Fails when stdin is not a
// terminal (scripts must provide a token via the config file).
func promptToken() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", errors.New("stdin is not a terminal; set the token in the config file")
	}

	fmt.Fprint(os.Stderr, "Todoist API token: ")

	tok, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	if len(tok) == 0 {
		return "", errors.New("empty token")
	}

	return string(tok), nil
}
