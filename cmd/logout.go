package cmd

import (
	"fmt"

	"github.com/inovacc/catalogr/internal/database"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the locally stored session",
	Long: `Remove the persisted session token. The API exposes no sign-out
endpoint, so the server-side token simply expires on its own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.GetDB().DeleteSession(); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		fmt.Println("✓ Signed out locally.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
