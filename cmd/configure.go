package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/catalogr/internal/cli"
	"github.com/inovacc/catalogr/internal/core"
	"github.com/inovacc/catalogr/internal/database"
	"github.com/spf13/cobra"
)

var (
	configureShow  bool
	configureReset bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure catalogr settings (interactive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configureShow {
			return core.ShowConfig(database.GetDB())
		}

		if configureReset {
			return core.ResetConfig(database.GetDB())
		}

		return runConfigureForm()
	},
}

func runConfigureForm() error {
	m, err := cli.NewConfigureModel(database.GetDB())
	if err != nil {
		return err
	}

	p := tea.NewProgram(&m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	configModel := finalModel.(*cli.ConfigureModel)

	return configModel.Err
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVarP(&configureShow, "show", "s", false, "Show current configuration")
	configureCmd.Flags().BoolVarP(&configureReset, "reset", "r", false, "Reset configuration to defaults")
}
