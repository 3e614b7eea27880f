// Package export writes parsed documents as JSON or as an XLSX workbook.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ohad12345678/payslip/internal/model"
)

// SheetName is the worksheet holding one row per statement.
const SheetName = "Statements"

// WriteJSON encodes docs as a JSON array. Absent values are written as null.
func WriteJSON(w io.Writer, docs []*model.Document, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if docs == nil {
		docs = []*model.Document{}
	}
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}
	return nil
}

// WriteXLSX writes a workbook with one row per statement across all docs.
// Absent values are left as empty cells.
func WriteXLSX(w io.Writer, docs []*model.Document) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	cols := Columns()
	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, c.Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for i := range doc.Records {
			rec := &doc.Records[i]
			for j, c := range cols {
				v := c.Value(doc, rec)
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(j+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(SheetName, cell, v); err != nil {
					return fmt.Errorf("failed to write %s: %w", cell, err)
				}
			}
			row++
		}
	}

	for i, c := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		_ = f.SetColWidth(SheetName, name, name, c.Width)
	}
	_ = f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
