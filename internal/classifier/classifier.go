// =============================================================================
// Escheatment Mailing Preparation - Record Classifier
// =============================================================================
//
// The classifier assigns every decoded record to one of four destination
// categories. Domestic routing is decided directly from the Mailing State
// field: the source marks foreign addresses with the literal state code
// "FO". Records marked foreign are held in a pre-classification set for the
// country inference heuristic; everything else is domestic.
//
// Domestic zip codes are normalized to ZIP+4 form on the way through, and
// the operator-selected letter code is stamped into every record.
//
// =============================================================================

package classifier

import (
	"strings"

	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
)

// Category is a record's destination mailing region. The string value is
// what lands in the record's AddressType field.
type Category string

const (
	Domestic     Category = "DOM"
	Canada       Category = "CAN"
	Mexico       Category = "MEX"
	OtherForeign Category = "FGN"
)

// foreignStateCode is the Mailing State value marking a foreign address.
const foreignStateCode = "FO"

// Classify stamps the letter code into every record and splits the input
// into the domestic partition and the foreign pre-classification set.
// Records are mutated in place (letter code, zip, address type); slice
// order is preserved within each partition.
func Classify(records []schema.Record, letterCode string) (domestic, foreign []schema.Record) {
	for _, record := range records {
		record.Set(schema.LetterCode, letterCode)

		if record.Get(schema.MailingState) == foreignStateCode {
			// Foreign mail carries no US zip; the country inference
			// heuristic decides the category later.
			record.Set(schema.Zip, "")
			foreign = append(foreign, record)
			continue
		}

		record.Set(schema.Zip, NormalizeZip(record.Get(schema.Zip)))
		record.Set(schema.AddressType, string(Domestic))
		domestic = append(domestic, record)
	}
	return domestic, foreign
}

// NormalizeZip formats a 9-digit domestic zip as ZIP+4: a code longer than
// 5 characters with no hyphen gets one inserted after the 5th character.
// 5-digit codes and already-hyphenated codes pass through unchanged, so the
// operation is idempotent.
func NormalizeZip(zip string) string {
	if len(zip) > 5 && !strings.Contains(zip, "-") {
		return zip[:5] + "-" + zip[5:]
	}
	return zip
}
