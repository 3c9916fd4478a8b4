package cmd

import (
	"fmt"

	"github.com/inovacc/catalogr/internal/core"
	"github.com/spf13/cobra"
)

var exportOutput string

var productsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the product list to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireSession(cmd.Context())
		if err != nil {
			return err
		}

		products, err := client.ListProducts(cmd.Context())
		if err != nil {
			return err
		}

		if err := core.ExportProducts(products, exportOutput); err != nil {
			return err
		}

		fmt.Printf("✓ Exported %d products to %s\n", len(products), exportOutput)

		return nil
	},
}

func init() {
	productsCmd.AddCommand(productsExportCmd)
	productsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "products.xlsx", "Output file path")
}
