package core

import (
	"fmt"

	"github.com/inovacc/catalogr/internal/model"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Products"

var exportHeader = []string{"ID", "Category", "Title", "Origin Price", "Price", "Unit", "Enabled", "Image URL"}

// ExportProducts writes the product list to an .xlsx workbook at path.
func ExportProducts(products []model.Product, path string) error {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	f.SetActiveSheet(idx)

	if err := f.SetColWidth(exportSheet, "A", "H", 24); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return err
		}
	}

	for row, p := range products {
		values := []any{p.ID, p.Category, p.Title, p.OriginPrice, p.Price, p.Unit, bool(p.Enabled), p.ImageURL}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
