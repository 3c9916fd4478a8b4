package core

import (
	"path/filepath"
	"testing"

	"github.com/inovacc/catalogr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportProducts(t *testing.T) {
	products := []model.Product{
		{ID: "1", Category: "kitchen", Title: "Mug", OriginPrice: 10, Price: 8, Unit: "piece", Enabled: true},
		{ID: "2", Category: "kitchen", Title: "Plate", OriginPrice: 20, Price: 15, Unit: "piece"},
	}

	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, ExportProducts(products, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per product")

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Mug", rows[1][2])
	assert.Equal(t, "Plate", rows[2][2])
	assert.Equal(t, "8", rows[1][4])
}

func TestExportProducts_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ExportProducts(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
