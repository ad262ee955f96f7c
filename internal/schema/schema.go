// =============================================================================
// Escheatment Mailing Preparation - Canonical Schema
// =============================================================================
//
// This package defines the canonical record layout every input source is
// normalized into. The layout is a fixed, ordered list of 26 named fields;
// the order defines the column order of every downstream output (static data
// file, revision workbook, mailing block assembly).
//
// Each field carries a matching pattern used to locate it in an arbitrary
// input header (spreadsheet exports name their columns inconsistently, e.g.
// "XRX Acct Seq" for the LT number, "Issue Name" for the company name).
//
// Also defined here:
//   - The US state/territory lookup table used to translate the Escheatment
//     State abbreviation into a full name.
//   - The set of valid letter codes selecting the print template.
//
// =============================================================================

package schema

import "regexp"

// Canonical field names. These are referenced by name throughout the
// pipeline; Index resolves a name to its position in the record.
const (
	FileTransmissionDate = "FileTransmissionDate"
	UPRRJobNumber        = "UPRR Job Number"
	LT                   = "LT"
	CompanyName          = "Company Name"
	CompanyNumber        = "Company Number"
	ASTSourceFileDate    = "ASTSourceFileDate"
	AccountNumber        = "Account Number"
	NameAddress1         = "NameAddress1"
	NameAddress2         = "NameAddress2"
	NameAddress3         = "NameAddress3"
	NameAddress4         = "NameAddress4"
	NameAddress5         = "NameAddress5"
	NameAddress6         = "NameAddress6"
	NameAddress7         = "NameAddress7"
	NameAddress8         = "NameAddress8"
	VerificationCode     = "Verification Code"
	Filler               = "Filler"
	MailingCity          = "Mailing City"
	Zip                  = "Zip"
	MailingState         = "Mailing State"
	Shares               = "Shares"
	Certified            = "Certified"
	LetterCode           = "LetterCode"
	Sequence             = "Sequence"
	EscheatmentState     = "Escheatment State"
	AddressType          = "AddressType"
)

// Field pairs a canonical field name with the pattern used to locate it in
// an arbitrary input header. Patterns are anchored at the start of the
// column name (regexp.MatchString would match anywhere; the mapper uses
// FindStringIndex and requires position zero).
type Field struct {
	// Name is the canonical field name.
	Name string

	// Pattern matches candidate header column names for this field.
	Pattern *regexp.Regexp
}

// Fields is the canonical field list, in canonical order. The patterns
// mirror the header variants seen across flat-file and spreadsheet sources.
var Fields = []Field{
	{FileTransmissionDate, regexp.MustCompile(`FileTransmissionDate`)},
	{UPRRJobNumber, regexp.MustCompile(`UPRR\s?Job\s?Number`)},
	{LT, regexp.MustCompile(`XRX\s?Acct\s?Seq`)},
	{CompanyName, regexp.MustCompile(`Issue\s?Name`)},
	{CompanyNumber, regexp.MustCompile(`Company`)},
	{ASTSourceFileDate, regexp.MustCompile(`ASTSourceFileDate`)},
	{AccountNumber, regexp.MustCompile(`Account\s?(Number)?`)},
	{NameAddress1, regexp.MustCompile(`Name/?\s?Address\s?1`)},
	{NameAddress2, regexp.MustCompile(`Name/?\s?Address\s?2`)},
	{NameAddress3, regexp.MustCompile(`Name/?\s?Address\s?3`)},
	{NameAddress4, regexp.MustCompile(`Name/?\s?Address\s?4`)},
	{NameAddress5, regexp.MustCompile(`Name/?\s?Address\s?5`)},
	{NameAddress6, regexp.MustCompile(`Name/?\s?Address\s?6`)},
	{NameAddress7, regexp.MustCompile(`Name/?\s?Address\s?7`)},
	{NameAddress8, regexp.MustCompile(`Name/?\s?Address\s?8`)},
	{VerificationCode, regexp.MustCompile(`Verification\s?Code`)},
	{Filler, regexp.MustCompile(`Filler`)},
	{MailingCity, regexp.MustCompile(`City`)},
	{Zip, regexp.MustCompile(`Zip`)},
	{MailingState, regexp.MustCompile(`(Mailing\s?)?State`)},
	{Shares, regexp.MustCompile(`Eligible\s?Shares`)},
	{Certified, regexp.MustCompile(`Certified`)},
	{LetterCode, regexp.MustCompile(`Letter\s?Code`)},
	{Sequence, regexp.MustCompile(`Sequence`)},
	{EscheatmentState, regexp.MustCompile(`(Escheatment|Eligibility)\s?State`)},
	{AddressType, regexp.MustCompile(`Address\s?Type`)},
}

// FieldCount is the number of canonical fields in a record.
var FieldCount = len(Fields)

// fieldIndex maps canonical field names to their positions.
var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(Fields))
	for i, f := range Fields {
		m[f.Name] = i
	}
	return m
}()

// Index returns the position of a canonical field in the record.
// Unknown names panic; callers always pass the package constants.
func Index(name string) int {
	i, ok := fieldIndex[name]
	if !ok {
		panic("schema: unknown canonical field " + name)
	}
	return i
}

// Header returns the canonical field names in canonical order.
// The slice is freshly allocated; callers may modify it.
func Header() []string {
	header := make([]string, len(Fields))
	for i, f := range Fields {
		header[i] = f.Name
	}
	return header
}

// =============================================================================
// US STATE LOOKUP TABLE
// =============================================================================

// USStates maps two-letter US state and territory abbreviations to full
// names. Used once per record to translate the Escheatment State field.
// A missing abbreviation is a fatal condition for the batch: there is no
// fallback entry, and emitting an ambiguous mailing destination is worse
// than stopping.
var USStates = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona",
	"AR": "Arkansas", "CA": "California", "CO": "Colorado",
	"CT": "Connecticut", "DE": "Delaware", "FL": "Florida",
	"GA": "Georgia", "HI": "Hawaii", "ID": "Idaho", "IL": "Illinois",
	"IN": "Indiana", "IA": "Iowa", "KS": "Kansas", "KY": "Kentucky",
	"LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana",
	"NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire",
	"NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "AS": "American Samoa",
	"DC": "District of Columbia", "FM": "Federated States of Micronesia",
	"GU": "Guam", "MH": "Marshall Islands", "MP": "Northern Mariana Islands",
	"PW": "Palau", "PR": "Puerto Rico", "VI": "U.S. Virgin Islands",
}

// =============================================================================
// LETTER CODES
// =============================================================================

// LetterCodes is the set of valid mailing-template codes. The code is
// supplied by the operator before processing and stamped into every
// record's LetterCode field.
var LetterCodes = []string{"A", "AC", "FA", "FC", "R", "RC"}

// ValidLetterCode reports whether code is one of the known template codes.
func ValidLetterCode(code string) bool {
	for _, c := range LetterCodes {
		if code == c {
			return true
		}
	}
	return false
}
