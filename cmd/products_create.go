package cmd

import (
	"fmt"

	"github.com/inovacc/catalogr/internal/model"
	"github.com/spf13/cobra"
)

// draftFlags mirrors the editable product fields. Prices stay strings so
// flag input goes through the same coercion as the console form.
type draftFlags struct {
	title       string
	category    string
	unit        string
	originPrice string
	price       string
	description string
	content     string
	imageURL    string
	images      []string
	enabled     bool
}

func addDraftFlags(cmd *cobra.Command, f *draftFlags) {
	cmd.Flags().StringVar(&f.title, "title", "", "Product title")
	cmd.Flags().StringVar(&f.category, "category", "", "Product category")
	cmd.Flags().StringVar(&f.unit, "unit", "", "Sales unit")
	cmd.Flags().StringVar(&f.originPrice, "origin-price", "", "Pre-discount price")
	cmd.Flags().StringVar(&f.price, "price", "", "Selling price")
	cmd.Flags().StringVar(&f.description, "description", "", "Short description")
	cmd.Flags().StringVar(&f.content, "content", "", "Long-form copy")
	cmd.Flags().StringVar(&f.imageURL, "image", "", "Main image URL")
	cmd.Flags().StringSliceVar(&f.images, "images", nil, "Secondary image URLs")
	cmd.Flags().BoolVar(&f.enabled, "enabled", false, "Publish the product")
}

func (f draftFlags) apply(d model.Draft) model.Draft {
	d = d.SetField("title", f.title)
	d = d.SetField("category", f.category)
	d = d.SetField("unit", f.unit)
	d = d.SetField("origin_price", f.originPrice)
	d = d.SetField("price", f.price)
	d = d.SetField("description", f.description)
	d = d.SetField("content", f.content)
	d = d.SetField("imageUrl", f.imageURL)
	d = d.SetEnabled(f.enabled)

	for i, u := range f.images {
		d = d.AppendImageSlot()
		d = d.SetImageAt(i, u)
	}

	return d
}

var createFlags draftFlags

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireSession(cmd.Context())
		if err != nil {
			return err
		}

		payload, err := createFlags.apply(model.EmptyDraft()).Payload()
		if err != nil {
			return err
		}

		if err := client.CreateProduct(cmd.Context(), payload); err != nil {
			return err
		}

		fmt.Println("✓ Product created.")

		return nil
	},
}

func init() {
	productsCmd.AddCommand(productsCreateCmd)
	addDraftFlags(productsCreateCmd, &createFlags)
	_ = productsCreateCmd.MarkFlagRequired("title")
}
