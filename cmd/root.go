package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/catalogr/internal/application"
	"github.com/inovacc/catalogr/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     application.AppName,
	Short:   "A product catalog admin console",
	Version: application.AppVersion,
	Long: `Catalogr is a command-line console for managing a remote product
catalog: sign in once, browse the product list and create, edit or
delete records through the catalog API.

Run 'catalogr' without arguments to enter interactive mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func runMenu(cmd *cobra.Command) error {
	for {
		m := cli.NewMainMenu()
		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		menuModel := finalModel.(cli.MainMenuModel)
		choice := menuModel.GetChoice()

		if choice == "" || choice == "exit" {
			fmt.Println("Goodbye!")

			return nil
		}

		var runErr error

		switch choice {
		case "console":
			runErr = runConsole(cmd.Context())
		case "products":
			runErr = runProductList(cmd.Context())
		case "login":
			runErr = runLoginForm()
		case "status":
			runErr = runStatus(cmd.Context())
		case "configure":
			runErr = runConfigureForm()
		}

		if runErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		}

		if choice != "console" || runErr != nil {
			fmt.Println("\nPress Enter to continue...")
			_, _ = fmt.Scanln()
		}
	}
}
