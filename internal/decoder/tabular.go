// =============================================================================
// Escheatment Mailing Preparation - Tabular Decoder
// =============================================================================
//
// The spreadsheet input path arrives as a delimited table: a header row
// followed by data rows. Columns are located through the field mapper, so
// the table may carry extra columns, reordered columns, or renamed headers.
//
// Spreadsheet exports differ from the flat file in two ways handled here:
//   - The Escheatment State arrives as a two-letter abbreviation and must be
//     translated to the full state name. An unknown abbreviation stops the
//     batch; there is no safe fallback destination.
//   - The LT number may be absent; a substitute is synthesized from the
//     company and account numbers.
//
// Exports also tend to trail off into formatting junk below the data, so
// decoding stops at the first row whose leading cells are all empty.
//
// =============================================================================

package decoder

import (
	"fmt"

	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
)

// sentinelCells is the number of leading cells inspected for the
// end-of-data sentinel.
const sentinelCells = 5

// DecodeTable decodes a header-plus-data table into canonical records using
// the resolved field mapping. Rows after the end-of-data sentinel are
// ignored.
func DecodeTable(table [][]string, mapping *schema.Mapping) ([]schema.Record, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("table is empty")
	}

	var records []schema.Record
	for rowIndex, row := range table[1:] {
		if isEndOfData(row) {
			break
		}
		record, err := decodeRow(row, mapping)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIndex+2, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// decodeRow builds one canonical record from a data row.
func decodeRow(row []string, mapping *schema.Mapping) (schema.Record, error) {
	record := schema.NewRecord()
	for fi, sourceIndex := range mapping.Indices {
		if sourceIndex == schema.NotFound || sourceIndex >= len(row) {
			continue
		}
		record[fi] = CleanField(row[sourceIndex])
	}

	// Translate the escheatment state abbreviation. The lookup table has
	// no fallback entry: an unknown abbreviation aborts the batch rather
	// than emit an ambiguous mailing destination.
	abbrev := record.Get(schema.EscheatmentState)
	fullName, ok := schema.USStates[abbrev]
	if !ok {
		return nil, fmt.Errorf("unknown escheatment state abbreviation %q", abbrev)
	}
	record.Set(schema.EscheatmentState, fullName)

	// Synthesize a substitute LT number when the source omits it. The
	// company and account numbers are concatenated verbatim; the result
	// only needs to be unique-ish within the mailing run.
	if record.Get(schema.LT) == "" {
		record.Set(schema.LT, record.Get(schema.CompanyNumber)+record.Get(schema.AccountNumber))
	}

	return record, nil
}

// isEndOfData reports whether the row marks the end of the data region:
// its first sentinelCells cells are all empty (or missing).
func isEndOfData(row []string) bool {
	for i := 0; i < sentinelCells; i++ {
		if i < len(row) && row[i] != "" {
			return false
		}
	}
	return true
}
