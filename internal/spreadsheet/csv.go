// =============================================================================
// Escheatment Mailing Preparation - Delimited Table Reader
// =============================================================================
//
// Some transfer agents deliver the spreadsheet export pre-converted to a
// delimited file. The reader is deliberately lenient: exports have ragged
// row widths and loose quoting, and the tabular decoder deals with missing
// cells itself.
//
// =============================================================================

package spreadsheet

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
)

// ReadDelimited reads a delimited file into a string table (header row
// first).
func ReadDelimited(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delimited file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("delimited file is empty")
	}

	return rows, nil
}
