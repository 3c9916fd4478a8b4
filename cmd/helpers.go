package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/inovacc/catalogr/internal/api"
	"github.com/inovacc/catalogr/internal/core"
	"github.com/inovacc/catalogr/internal/database"
	"github.com/inovacc/catalogr/internal/model"
	"golang.org/x/term"
)

// newClient builds an API client from the effective configuration.
func newClient() (*api.Client, database.Store, error) {
	store := database.GetDB()

	cfg, err := core.LoadConfig(store)
	if err != nil {
		return nil, nil, err
	}

	client, err := api.NewClient(cfg.APIBase, cfg.APIPath, api.ClientOptions{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w (run 'catalogr configure' first)", err)
	}

	return client, store, nil
}

func newSessionManager() (*core.SessionManager, *api.Client, error) {
	client, store, err := newClient()
	if err != nil {
		return nil, nil, err
	}

	return core.NewSessionManager(client, store, nil), client, nil
}

// requireSession restores the persisted session and returns a client with
// the token attached. Everything past sign-in goes through here.
func requireSession(ctx context.Context) (*api.Client, error) {
	sessions, client, err := newSessionManager()
	if err != nil {
		return nil, err
	}

	if _, ok := sessions.Restore(ctx); !ok {
		return nil, core.ErrNoSession
	}

	return client, nil
}

// readPassword reads a password without echo when stdin is a terminal,
// falling back to plain line input for piped invocations.
func readPassword(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr) // New line after password input

		if err != nil {
			return "", err
		}

		return string(password), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}

	return "", fmt.Errorf("no password provided")
}

func printProducts(products []model.Product) {
	if len(products) == 0 {
		fmt.Println("No products.")

		return
	}

	fmt.Printf("%-24s %-16s %-32s %14s %14s %-8s\n", "ID", "CATEGORY", "TITLE", "ORIGIN PRICE", "PRICE", "ENABLED")

	for _, p := range products {
		enabled := "no"
		if p.Enabled {
			enabled = "yes"
		}

		fmt.Printf("%-24s %-16s %-32s %14s %14s %-8s\n",
			p.ID, p.Category, p.Title,
			humanize.Commaf(p.OriginPrice), humanize.Commaf(p.Price),
			enabled,
		)
	}
}
