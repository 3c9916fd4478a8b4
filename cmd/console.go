package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/catalogr/internal/cli"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive product console",
	Long: `Browse the product list and create, edit or delete records through a
modal editing form. Requires an active session; run 'catalogr login'
first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd.Context())
	},
}

func runConsole(ctx context.Context) error {
	client, err := requireSession(ctx)
	if err != nil {
		return err
	}

	m := cli.NewConsole(client)

	p := tea.NewProgram(m)

	_, err = p.Run()

	return err
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
