package cmd

import (
	"fmt"

	"github.com/inovacc/catalogr/internal/model"
	"github.com/spf13/cobra"
)

var updateFlags draftFlags

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Long:  `Fetch the product with the given id, apply the given flags on top of its current fields and write it back.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		client, err := requireSession(cmd.Context())
		if err != nil {
			return err
		}

		products, err := client.ListProducts(cmd.Context())
		if err != nil {
			return err
		}

		var found *model.Product

		for i := range products {
			if products[i].ID == id {
				found = &products[i]

				break
			}
		}

		if found == nil {
			return fmt.Errorf("no product with id %q", id)
		}

		d := model.DraftOf(*found)

		flagSetters := map[string]func(model.Draft) model.Draft{
			"title":        func(d model.Draft) model.Draft { return d.SetField("title", updateFlags.title) },
			"category":     func(d model.Draft) model.Draft { return d.SetField("category", updateFlags.category) },
			"unit":         func(d model.Draft) model.Draft { return d.SetField("unit", updateFlags.unit) },
			"origin-price": func(d model.Draft) model.Draft { return d.SetField("origin_price", updateFlags.originPrice) },
			"price":        func(d model.Draft) model.Draft { return d.SetField("price", updateFlags.price) },
			"description":  func(d model.Draft) model.Draft { return d.SetField("description", updateFlags.description) },
			"content":      func(d model.Draft) model.Draft { return d.SetField("content", updateFlags.content) },
			"image":        func(d model.Draft) model.Draft { return d.SetField("imageUrl", updateFlags.imageURL) },
			"enabled":      func(d model.Draft) model.Draft { return d.SetEnabled(updateFlags.enabled) },
		}

		for name, set := range flagSetters {
			if cmd.Flags().Changed(name) {
				d = set(d)
			}
		}

		if cmd.Flags().Changed("images") {
			for len(d.ImagesURL) > 0 {
				d = d.RemoveLastImageSlot()
			}

			for i, u := range updateFlags.images {
				d = d.AppendImageSlot()
				d = d.SetImageAt(i, u)
			}
		}

		payload, err := d.Payload()
		if err != nil {
			return err
		}

		if err := client.UpdateProduct(cmd.Context(), id, payload); err != nil {
			return err
		}

		fmt.Println("✓ Product updated.")

		return nil
	},
}

func init() {
	productsCmd.AddCommand(productsUpdateCmd)
	addDraftFlags(productsUpdateCmd, &updateFlags)
}
