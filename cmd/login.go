package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/catalogr/internal/cli"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the catalog API",
	Long: `Authenticate against the catalog API and persist the session locally.
Without flags an interactive form is shown; with --username the password
is read from the terminal unless --password is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUsername == "" {
			return runLoginForm()
		}

		password := loginPassword
		if password == "" {
			var err error

			password, err = readPassword("Password: ")
			if err != nil {
				return err
			}
		}

		sessions, _, err := newSessionManager()
		if err != nil {
			return err
		}

		sess, err := sessions.SignIn(cmd.Context(), loginUsername, password)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Signed in. Session valid until %s.\n", sess.Expiry.Format(time.RFC1123))

		return nil
	},
}

func runLoginForm() error {
	sessions, _, err := newSessionManager()
	if err != nil {
		return err
	}

	m := cli.NewLoginModel(sessions)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	loginModel := finalModel.(*cli.LoginModel)

	sess := loginModel.Session()
	if sess == nil {
		fmt.Println("Sign-in cancelled.")

		return nil
	}

	fmt.Printf("✓ Signed in. Session valid until %s.\n", sess.Expiry.Format(time.RFC1123))

	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")
}
