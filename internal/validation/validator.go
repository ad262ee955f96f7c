// =============================================================================
// Escheatment Mailing Preparation - Batch Validation
// =============================================================================
//
// Final pre-write checks over a fully classified batch. The pipeline is
// all-or-nothing: either every record passes and all four artifacts are
// written, or nothing is. Validation runs after classification and before
// any output file is opened, so a failure leaves no partial artifacts.
//
// The checks enforce the structural invariants the print vendor relies on:
// every record has exactly the canonical number of values, every record has
// been assigned a destination category, and the letter code is one of the
// known template codes.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/escheatment-mailing/internal/classifier"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
)

// ValidationError describes one failed check on one record.
type ValidationError struct {
	// RecordIndex is the record's position in emission order (0-based).
	RecordIndex int

	// Field is the canonical field involved, when the check concerns a
	// single field.
	Field string

	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("record %d, field %q: %s", e.RecordIndex, e.Field, e.Message)
	}
	return fmt.Sprintf("record %d: %s", e.RecordIndex, e.Message)
}

// validCategories is the set of AddressType values a classified record may
// carry.
var validCategories = map[string]bool{
	string(classifier.Domestic):     true,
	string(classifier.Canada):       true,
	string(classifier.Mexico):       true,
	string(classifier.OtherForeign): true,
}

// ValidateBatch checks every classified record against the structural
// invariants. Records are given in emission order. Returns all failures,
// not just the first.
func ValidateBatch(records []schema.Record, letterCode string) []*ValidationError {
	var errs []*ValidationError

	if !schema.ValidLetterCode(letterCode) {
		errs = append(errs, &ValidationError{
			Field:   schema.LetterCode,
			Message: fmt.Sprintf("letter code %q is not one of %s", letterCode, strings.Join(schema.LetterCodes, ", ")),
		})
	}

	for i, record := range records {
		if len(record) != schema.FieldCount {
			errs = append(errs, &ValidationError{
				RecordIndex: i,
				Message:     fmt.Sprintf("has %d values, expected %d", len(record), schema.FieldCount),
			})
			continue
		}
		if !validCategories[record.Get(schema.AddressType)] {
			errs = append(errs, &ValidationError{
				RecordIndex: i,
				Field:       schema.AddressType,
				Message:     fmt.Sprintf("unassigned or unknown destination category %q", record.Get(schema.AddressType)),
			})
		}
		if record.Get(schema.LetterCode) != letterCode {
			errs = append(errs, &ValidationError{
				RecordIndex: i,
				Field:       schema.LetterCode,
				Message:     fmt.Sprintf("expected stamped letter code %q, found %q", letterCode, record.Get(schema.LetterCode)),
			})
		}
	}

	return errs
}

// FormatErrors renders validation failures for the process log.
func FormatErrors(errs []*ValidationError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = "  - " + e.Error()
	}
	return strings.Join(lines, "\n")
}
