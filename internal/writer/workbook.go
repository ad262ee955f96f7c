// =============================================================================
// Escheatment Mailing Preparation - Revision Workbook Writer
// =============================================================================
//
// The operators keep a spreadsheet copy of every prepared mailing for
// review and audit. The workbook carries the same canonical columns and
// emission order as the static data file.
//
// =============================================================================

package writer

import (
	"fmt"

	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes the canonical records to an XLSX workbook at path,
// on a sheet with the given name.
func WriteWorkbook(path, sheet string, records []schema.Record) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	index, err := workbook.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	workbook.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := workbook.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	if err := writeWorkbookRow(workbook, sheet, 1, schema.Header()); err != nil {
		return err
	}
	for i, record := range records {
		if err := writeWorkbookRow(workbook, sheet, i+2, record); err != nil {
			return err
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeWorkbookRow writes one row of string cells (1-based row number).
func writeWorkbookRow(workbook *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := workbook.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
