// =============================================================================
// Escheatment Mailing Preparation - Delimited Output Writers
// =============================================================================
//
// Two delimited artifacts per run, in the exact byte format the print
// vendor's intake expects (every field double-quoted, embedded quotes
// doubled, CRLF row terminators):
//
//   - Static data: the full 26-column canonical record per recipient.
//   - Address data: the 19-column mailing-block layout consumed by the
//     mail-merge software, with the delivery/alternate address split
//     produced by the address block formatter.
//
// Rows are written in emission order (Mexico, Canada, other foreign,
// domestic) with the sequence numbers already stamped by the pipeline.
//
// =============================================================================

package writer

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/escheatment-mailing/internal/formatter"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
)

// AddressHeader is the mailing-block output header. The first three columns
// (barcode, OEL, sack/pack) are filled by the presort software downstream
// and are written empty.
var AddressHeader = []string{
	"IM barcode Digits", "OEL", "Sack and Pack Numbers",
	"Presort Sequence", "Full Name", "Name2", "Name3",
	"Name4", "Name5", "Name6", "Name7", "Name8", "Delivery Address",
	"Alternate 1 Address", "City", "State", "ZIP+4", "LTNo", "SEQ",
}

// QuoteAllWriter writes delimited rows with every field quoted.
type QuoteAllWriter struct {
	w *bufio.Writer
}

// NewQuoteAllWriter wraps a file for quote-all delimited output.
func NewQuoteAllWriter(f *os.File) *QuoteAllWriter {
	return &QuoteAllWriter{w: bufio.NewWriter(f)}
}

// WriteRow writes one row: fields double-quoted with embedded quotes
// doubled, comma-separated, CRLF-terminated.
func (qw *QuoteAllWriter) WriteRow(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := qw.w.WriteByte(','); err != nil {
				return err
			}
		}
		quoted := `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		if _, err := qw.w.WriteString(quoted); err != nil {
			return err
		}
	}
	_, err := qw.w.WriteString("\r\n")
	return err
}

// Flush flushes buffered rows to the underlying file.
func (qw *QuoteAllWriter) Flush() error {
	return qw.w.Flush()
}

// WriteStaticData writes the full canonical records to path.
func WriteStaticData(path string, records []schema.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create static data file: %w", err)
	}
	defer file.Close()

	qw := NewQuoteAllWriter(file)
	if err := qw.WriteRow(schema.Header()); err != nil {
		return fmt.Errorf("failed to write static data header: %w", err)
	}
	for _, record := range records {
		if err := qw.WriteRow(record); err != nil {
			return fmt.Errorf("failed to write static data row: %w", err)
		}
	}
	if err := qw.Flush(); err != nil {
		return fmt.Errorf("failed to flush static data: %w", err)
	}
	return nil
}

// WriteAddressData writes the mailing-block rows to path. Each row carries
// the record's sequence number in both the presort-sequence and SEQ
// columns, and the LT number for matching back to the static data.
func WriteAddressData(path string, records []schema.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create address data file: %w", err)
	}
	defer file.Close()

	qw := NewQuoteAllWriter(file)
	if err := qw.WriteRow(AddressHeader); err != nil {
		return fmt.Errorf("failed to write address data header: %w", err)
	}
	for _, record := range records {
		if err := qw.WriteRow(addressRow(record)); err != nil {
			return fmt.Errorf("failed to write address data row: %w", err)
		}
	}
	if err := qw.Flush(); err != nil {
		return fmt.Errorf("failed to flush address data: %w", err)
	}
	return nil
}

// addressRow assembles one 19-column mailing-block row.
func addressRow(record schema.Record) []string {
	seq := record.Get(schema.Sequence)
	row := make([]string, 0, len(AddressHeader))
	row = append(row, "", "", "", seq)
	row = append(row, formatter.Format(record).Values()...)
	return append(row, record.Get(schema.LT), seq)
}
