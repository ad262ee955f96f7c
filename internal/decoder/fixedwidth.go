// =============================================================================
// Escheatment Mailing Preparation - Fixed-Width Decoder
// =============================================================================
//
// The flat-file input carries one 453-byte record per line, fields at fixed
// byte offsets. The layout has only 7 name/address lines where the canonical
// record has 8, and no AddressType column; decoding inserts the missing
// values to produce a full canonical record.
//
// DECODING STEPS (per line):
//   1. Sanitize the raw bytes to printable 7-bit ASCII.
//   2. Split into fixed-width slices per the layout.
//   3. Collapse internal whitespace in every field and trim.
//   4. Widen the 24 layout values to the 26-field canonical record.
//
// A line shorter than the layout is fatal: slicing a short line would
// silently misalign every following field, so the whole batch stops instead.
//
// =============================================================================

package decoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
)

// FixedWidths is the byte width of each field in the flat-file layout, in
// order: FileTransmissionDate, UPRR Job Number, LT, Company Name, Company
// Number, ASTSourceFileDate, Account Number, NameAddress1-7, Verification
// Code, Filler, Mailing City, Zip, Mailing State, Shares, Certified,
// LetterCode, Sequence, Escheatment State.
var FixedWidths = []int{8, 6, 9, 40, 12, 8, 19, 40, 40, 40, 40, 40, 40, 40, 4, 36, 40, 9, 2, 14, 1, 2, 6, 20}

// FixedLineLength is the total record length in bytes, excluding the line
// terminator.
var FixedLineLength = func() int {
	sum := 0
	for _, w := range FixedWidths {
		sum += w
	}
	return sum
}()

// DecodeFixedLine decodes one flat-file line into a canonical record.
// lineNumber is 1-based and used only for error reporting.
func DecodeFixedLine(line []byte, lineNumber int) (schema.Record, error) {
	// Tolerate a trailing CR left behind by line splitting.
	line = []byte(strings.TrimRight(string(line), "\r\n"))

	if len(line) < FixedLineLength {
		return nil, fmt.Errorf("line %d: expected %d bytes, got %d", lineNumber, FixedLineLength, len(line))
	}

	clean := SanitizeASCII(line)

	values := make([]string, 0, schema.FieldCount)
	offset := 0
	for _, width := range FixedWidths {
		values = append(values, CollapseSpaces(clean[offset:offset+width]))
		offset += width
	}

	// The flat file carries 7 address lines; the canonical record has 8.
	// Insert the blank before the last address line, so the flat file's
	// 7th line lands in NameAddress8 and NameAddress7 is empty. This is
	// the layout the revision workbook has always shipped with; downstream
	// address compaction drops the blank either way.
	values = insertAt(values, schema.Index(schema.NameAddress7), "")

	// No AddressType column in the flat file; the classifier stamps it.
	values = append(values, "")

	if len(values) != schema.FieldCount {
		return nil, fmt.Errorf("line %d: decoded %d fields, expected %d", lineNumber, len(values), schema.FieldCount)
	}

	return schema.Record(values), nil
}

// DecodeFixedFile decodes every line of a flat-file input. Any malformed
// line aborts the batch.
func DecodeFixedFile(r io.Reader) ([]schema.Record, error) {
	var records []schema.Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		record, err := DecodeFixedLine(line, lineNumber)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flat file: %w", err)
	}

	return records, nil
}

// EncodeFixedLine serializes the 24 layout-mapped values of a canonical
// record back into one 453-byte line: left-justified, space-padded, values
// truncated to their field width. Round-tripping a decoded line through
// this encoder reproduces the original content modulo sanitization and
// whitespace collapsing.
func EncodeFixedLine(record schema.Record) (string, error) {
	if len(record) != schema.FieldCount {
		return "", fmt.Errorf("record has %d fields, expected %d", len(record), schema.FieldCount)
	}

	// Undo the canonical widening: drop NameAddress7 (the inserted blank
	// slot) and AddressType, leaving the 24 layout fields in order.
	layout := make([]string, 0, len(FixedWidths))
	skip := schema.Index(schema.NameAddress7)
	for i, value := range record {
		if i == skip || i == schema.Index(schema.AddressType) {
			continue
		}
		layout = append(layout, value)
	}

	var b strings.Builder
	b.Grow(FixedLineLength)
	for i, width := range FixedWidths {
		value := layout[i]
		if len(value) > width {
			value = value[:width]
		}
		b.WriteString(value)
		b.WriteString(strings.Repeat(" ", width-len(value)))
	}
	return b.String(), nil
}

// insertAt returns values with v inserted before position i.
func insertAt(values []string, i int, v string) []string {
	values = append(values, "")
	copy(values[i+1:], values[i:])
	values[i] = v
	return values
}
