// =============================================================================
// Escheatment Mailing Preparation - Address Block Formatter
// =============================================================================
//
// The print vendor's mailing software expects a fixed block per recipient:
// eight name lines, one delivery address line, one optional alternate
// address line (apartment/suite qualifier), then city, state and zip.
// Source records instead carry up to eight free-text name/address lines
// with street and apartment information mixed in anywhere, so the formatter
// must reconstruct the split.
//
// The rule for domestic records: the last populated line is the delivery
// address, unless it looks like an apartment/suite/floor qualifier and at
// least one line precedes the street line, in which case the second-to-last
// line is the delivery address and the qualifier becomes the alternate
// address. Foreign mail folds the city into the name/address block and
// leaves the delivery/alternate and city/state/zip columns empty.
//
// The formatter returns a new Block; it never mutates the record.
//
// =============================================================================

package formatter

import (
	"regexp"

	"github.com/ginjaninja78/escheatment-mailing/internal/classifier"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
)

// NameSlots is the fixed number of name-line slots in the mailing block.
const NameSlots = 8

// aptPattern detects an apartment/suite/floor/unit qualifier line: a line
// starting with #, BLDG, SUITE, LOT, UNIT, FLOOR, ROOM or APT, a 1-4 digit
// number followed by a letter, or an ordinal floor ("3RD FLR"). The whole
// line must match.
var aptPattern = regexp.MustCompile(`(?i)^((#|B(UI)?LD(IN)?G|SUITE|LOT|UNIT|FLOOR|R(OO)?M|AP(ARTMEN)?T).+|(\d{1,4}\s?\w)|(\d{1,3}(ST|ND|RD|TH)?\s?FL(OO)?R?))$`)

// Block is the fixed mailing-block layout for one recipient.
type Block struct {
	// Names holds the 8 name-line slots, padded with blanks.
	Names [NameSlots]string

	// DeliveryAddress is the primary street-address line. Empty for
	// foreign records and for records with no distinguishable street line.
	DeliveryAddress string

	// AlternateAddress is the secondary qualifier line (apartment, suite),
	// when distinguishable from the delivery address.
	AlternateAddress string

	// City, State and Zip are the separate destination columns. Blank for
	// foreign records, which fold the city into the name lines instead.
	City  string
	State string
	Zip   string
}

// Values returns the block's 13 values in output column order:
// Name1..Name8, DeliveryAddress, AlternateAddress, City, State, Zip.
func (b *Block) Values() []string {
	values := make([]string, 0, NameSlots+5)
	values = append(values, b.Names[:]...)
	return append(values, b.DeliveryAddress, b.AlternateAddress, b.City, b.State, b.Zip)
}

// Format builds the mailing block for a record already stamped with its
// destination category.
func Format(record schema.Record) *Block {
	lines := record.CompactAddressLines()

	switch classifier.Category(record.Get(schema.AddressType)) {
	case classifier.Canada, classifier.Mexico, classifier.OtherForeign:
		return formatForeign(lines, record.Get(schema.MailingCity))
	default:
		return formatDomestic(lines,
			record.Get(schema.MailingCity),
			record.Get(schema.MailingState),
			record.Get(schema.Zip))
	}
}

// formatForeign folds the mailing city into the name/address lines and
// leaves every other block column empty. A record with all 8 lines
// populated overflows the slots when the city is appended; the tail is
// trimmed to keep the block at its fixed width.
func formatForeign(lines []string, city string) *Block {
	block := &Block{}
	lines = append(lines, city)
	if len(lines) > NameSlots {
		lines = lines[:NameSlots]
	}
	copy(block.Names[:], lines)
	return block
}

// formatDomestic identifies the delivery address line and, when present,
// the alternate address qualifier, and fills the remaining lines into the
// name slots.
func formatDomestic(lines []string, city, state, zip string) *Block {
	block := &Block{City: city, State: state, Zip: zip}

	// A single populated line carries no distinguishable street line.
	if len(lines) < 2 {
		copy(block.Names[:], lines)
		return block
	}

	last := lines[len(lines)-1]
	if aptPattern.MatchString(last) && len(lines) > 2 {
		block.DeliveryAddress = lines[len(lines)-2]
		block.AlternateAddress = last
		copy(block.Names[:], lines[:len(lines)-2])
	} else {
		block.DeliveryAddress = last
		copy(block.Names[:], lines[:len(lines)-1])
	}
	return block
}
