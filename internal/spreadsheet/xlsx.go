// =============================================================================
// Escheatment Mailing Preparation - Spreadsheet Reader
// =============================================================================
//
// Spreadsheet exports arrive as .xlsx (or legacy .xls re-saved as .xlsx)
// workbooks. This package turns the first sheet of a workbook into the
// plain string table the tabular decoder consumes: a header row followed by
// data rows. The original toolchain shelled out to Excel to convert the
// workbook to CSV first; reading the workbook directly removes that
// dependency on an installed Excel.
//
// =============================================================================

package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the first sheet of an XLSX workbook into a string
// table. Cells are returned as their formatted string values, matching
// what a CSV export of the sheet would contain.
func ReadWorkbook(path string) ([][]string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return rows, nil
}
