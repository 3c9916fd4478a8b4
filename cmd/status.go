package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/inovacc/catalogr/internal/core"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd.Context())
	},
}

func runStatus(ctx context.Context) error {
	client, store, err := newClient()
	if err != nil {
		return err
	}

	cfg, err := core.LoadConfig(store)
	if err != nil {
		return err
	}

	fmt.Println("Catalogr Status:")
	fmt.Println("================")
	fmt.Printf("API Base: %s\n", cfg.APIBase)
	fmt.Printf("API Path: %s\n", cfg.APIPath)

	sessions := core.NewSessionManager(client, store, nil)

	sess, ok := sessions.Restore(ctx)
	if !ok {
		fmt.Println("Session:  not signed in")

		return nil
	}

	fmt.Println("Session:  active (verified against the server)")
	fmt.Printf("Expiry:   %s\n", sess.Expiry.Format(time.RFC1123))

	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
