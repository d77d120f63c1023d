package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/recipebook/internal/core/domain"
)

// SheetName is the worksheet holding the recipes.
const SheetName = "Recipes"

var xlsxHeader = []interface{}{
	"ID", "Name", "Description", "Tags", "Vegetarian",
	"Ingredients", "Instructions", "Benefits", "Image",
}

func writeXLSX(w io.Writer, recipes []domain.Recipe, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("creating stream writer: %w", err)
	}
	if err := sw.SetRow("A1", xlsxHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range recipes {
		p := recipes[i].Project(opts.Locale)
		veg := "no"
		if p.Vegetarian {
			veg = "yes"
		}
		row := []interface{}{
			int(p.ID), p.Name, p.Description, strings.Join(p.Tags, ", "), veg,
			strings.Join(p.Ingredients, "\n"), p.Instructions,
			strings.Join(p.Benefits, "\n"), p.Image,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("writing recipe %d: %w", p.ID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
