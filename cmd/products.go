package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Work with the product list",
	Long:  `Print the current product list. Subcommands create, update, delete and export records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProductList(cmd.Context())
	},
}

func runProductList(ctx context.Context) error {
	client, err := requireSession(ctx)
	if err != nil {
		return err
	}

	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}

	printProducts(products)

	return nil
}

func init() {
	rootCmd.AddCommand(productsCmd)
}
