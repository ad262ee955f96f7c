// =============================================================================
// Escheatment Mailing Preparation - Record Type
// =============================================================================
//
// A Record is one canonical mailing-list entry: exactly one string value per
// canonical field, indexed by canonical order. Records are created by the
// decoders, mutated in place by the classifier (letter code, address type,
// zip normalization) and by sequence assignment, and are terminal once
// written to output.
//
// =============================================================================

package schema

import "strings"

// Record holds one value per canonical field, in canonical order.
// Invariant: len(Record) == FieldCount, with empty strings standing in for
// absent source values.
type Record []string

// NewRecord returns an empty record of canonical length.
func NewRecord() Record {
	return make(Record, FieldCount)
}

// Get returns the value of the named canonical field.
func (r Record) Get(name string) string {
	return r[Index(name)]
}

// Set assigns the value of the named canonical field.
func (r Record) Set(name, value string) {
	r[Index(name)] = value
}

// AddressLines returns the 8 NameAddress fields in order, including blank
// entries. The slice aliases the record's storage; callers that reshuffle
// lines copy first (the address block formatter never mutates a record).
func (r Record) AddressLines() []string {
	start := Index(NameAddress1)
	return r[start : start+8]
}

// CompactAddressLines returns the record's non-blank, non-"NULL" address
// lines in order. Schema differences leave blank and literal "NULL" entries
// scattered through the 8 slots; only the remaining lines are semantically
// meaningful. The result is freshly allocated.
func (r Record) CompactAddressLines() []string {
	var lines []string
	for _, line := range r.AddressLines() {
		upper := strings.ToUpper(line)
		if upper == "" || upper == "NULL" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
