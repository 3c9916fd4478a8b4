package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteYes bool

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !deleteYes {
			fmt.Printf("Delete product %q? [y/N]: ", id)

			var response string
			_, _ = fmt.Scanln(&response)

			if response != "y" && response != "Y" {
				fmt.Println("Cancelled.")

				return nil
			}
		}

		client, err := requireSession(cmd.Context())
		if err != nil {
			return err
		}

		if err := client.DeleteProduct(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Println("✓ Product deleted.")

		return nil
	},
}

func init() {
	productsCmd.AddCommand(productsDeleteCmd)
	productsDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation prompt")
}
