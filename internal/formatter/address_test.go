package formatter

import (
	"testing"

	"github.com/ginjaninja78/escheatment-mailing/internal/classifier"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domesticRecord(lines ...string) schema.Record {
	r := schema.NewRecord()
	for i, line := range lines {
		r[schema.Index(schema.NameAddress1)+i] = line
	}
	r.Set(schema.MailingCity, "OMAHA")
	r.Set(schema.MailingState, "NE")
	r.Set(schema.Zip, "68179-0001")
	r.Set(schema.AddressType, string(classifier.Domestic))
	return r
}

func TestFormatDomesticWithApartmentQualifier(t *testing.T) {
	block := Format(domesticRecord("JOHN DOE", "123 MAIN ST", "APT 4B"))

	assert.Equal(t, "123 MAIN ST", block.DeliveryAddress)
	assert.Equal(t, "APT 4B", block.AlternateAddress)
	assert.Equal(t, [8]string{"JOHN DOE", "", "", "", "", "", "", ""}, block.Names)
	assert.Equal(t, "OMAHA", block.City)
	assert.Equal(t, "NE", block.State)
	assert.Equal(t, "68179-0001", block.Zip)
}

func TestFormatDomesticPlainStreetLine(t *testing.T) {
	block := Format(domesticRecord("JOHN DOE", "JANE DOE", "123 MAIN ST"))

	assert.Equal(t, "123 MAIN ST", block.DeliveryAddress)
	assert.Equal(t, "", block.AlternateAddress)
	assert.Equal(t, [8]string{"JOHN DOE", "JANE DOE", "", "", "", "", "", ""}, block.Names)
}

func TestFormatDomesticSingleLine(t *testing.T) {
	block := Format(domesticRecord("JOHN DOE"))

	assert.Equal(t, "", block.DeliveryAddress)
	assert.Equal(t, "", block.AlternateAddress)
	assert.Equal(t, [8]string{"JOHN DOE", "", "", "", "", "", "", ""}, block.Names)
	// City/State/Zip stay as-is for domestic records.
	assert.Equal(t, "OMAHA", block.City)
}

func TestFormatDomesticTwoLinesQualifierStaysDelivery(t *testing.T) {
	// With exactly two entries the qualifier rule does not apply: the
	// last line is the delivery address even when it looks like an
	// apartment line.
	block := Format(domesticRecord("JOHN DOE", "APT 4B"))

	assert.Equal(t, "APT 4B", block.DeliveryAddress)
	assert.Equal(t, "", block.AlternateAddress)
	assert.Equal(t, [8]string{"JOHN DOE", "", "", "", "", "", "", ""}, block.Names)
}

func TestFormatDomesticSkipsNullLines(t *testing.T) {
	block := Format(domesticRecord("JOHN DOE", "NULL", "", "123 MAIN ST", "SUITE 200"))

	assert.Equal(t, "123 MAIN ST", block.DeliveryAddress)
	assert.Equal(t, "SUITE 200", block.AlternateAddress)
	assert.Equal(t, [8]string{"JOHN DOE", "", "", "", "", "", "", ""}, block.Names)
}

func TestAptPattern(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"#12", true},
		{"APT 4B", true},
		{"APARTMENT 7", true},
		{"SUITE 200", true},
		{"BLDG 9", true},
		{"BUILDING 9", true},
		{"LOT 44", true},
		{"UNIT 3", true},
		{"FLOOR 2", true},
		{"RM 110", true},
		{"ROOM 110", true},
		{"3RD FLR", true},
		{"12 FLOOR", true},
		{"1234 A", true},
		{"123 MAIN ST", false},
		{"JOHN DOE", false},
		{"PO BOX 123", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, aptPattern.MatchString(tt.line), tt.line)
		})
	}
}

func foreignRecord(category classifier.Category, lines ...string) schema.Record {
	r := schema.NewRecord()
	for i, line := range lines {
		r[schema.Index(schema.NameAddress1)+i] = line
	}
	r.Set(schema.MailingCity, "TORONTO ON M5H 2N2")
	r.Set(schema.MailingState, "FO")
	r.Set(schema.AddressType, string(category))
	return r
}

func TestFormatForeignFoldsCity(t *testing.T) {
	block := Format(foreignRecord(classifier.Canada, "J SMITH", "1 KING ST W"))

	assert.Equal(t, [8]string{"J SMITH", "1 KING ST W", "TORONTO ON M5H 2N2", "", "", "", "", ""}, block.Names)
	assert.Equal(t, "", block.DeliveryAddress)
	assert.Equal(t, "", block.AlternateAddress)
	// Foreign mail uses the folded city line instead of the separate
	// city/state/zip columns.
	assert.Equal(t, "", block.City)
	assert.Equal(t, "", block.State)
	assert.Equal(t, "", block.Zip)
}

func TestFormatForeignOverflowTrimsToSlots(t *testing.T) {
	block := Format(foreignRecord(classifier.OtherForeign,
		"L1", "L2", "L3", "L4", "L5", "L6", "L7", "L8"))

	// Eight populated lines plus the folded city overflow the fixed
	// block; the tail is trimmed.
	assert.Equal(t, [8]string{"L1", "L2", "L3", "L4", "L5", "L6", "L7", "L8"}, block.Names)
}

func TestBlockValues(t *testing.T) {
	block := Format(domesticRecord("JOHN DOE", "123 MAIN ST", "APT 4B"))
	values := block.Values()
	require.Len(t, values, 13)
	assert.Equal(t, "JOHN DOE", values[0])
	assert.Equal(t, "123 MAIN ST", values[8])
	assert.Equal(t, "APT 4B", values[9])
	assert.Equal(t, []string{"OMAHA", "NE", "68179-0001"}, values[10:])
}

func TestFormatDoesNotMutateRecord(t *testing.T) {
	r := domesticRecord("JOHN DOE", "123 MAIN ST", "APT 4B")
	before := append(schema.Record{}, r...)
	Format(r)
	assert.Equal(t, before, r)
}
