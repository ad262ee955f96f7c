package validation

import (
	"testing"

	"github.com/ginjaninja78/escheatment-mailing/internal/classifier"
	"github.com/ginjaninja78/escheatment-mailing/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifiedRecord(category classifier.Category, letterCode string) schema.Record {
	r := schema.NewRecord()
	r.Set(schema.LT, "LT0000001")
	r.Set(schema.AddressType, string(category))
	r.Set(schema.LetterCode, letterCode)
	return r
}

func TestValidateBatchClean(t *testing.T) {
	records := []schema.Record{
		classifiedRecord(classifier.Mexico, "A"),
		classifiedRecord(classifier.Canada, "A"),
		classifiedRecord(classifier.OtherForeign, "A"),
		classifiedRecord(classifier.Domestic, "A"),
	}
	assert.Empty(t, ValidateBatch(records, "A"))
}

func TestValidateBatchBadLetterCode(t *testing.T) {
	errs := ValidateBatch(nil, "XX")
	require.Len(t, errs, 1)
	assert.Equal(t, schema.LetterCode, errs[0].Field)
	assert.Contains(t, errs[0].Error(), `"XX"`)
}

func TestValidateBatchWrongFieldCount(t *testing.T) {
	errs := ValidateBatch([]schema.Record{{"too", "short"}}, "A")
	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].RecordIndex)
	assert.Contains(t, errs[0].Message, "expected 26")
}

func TestValidateBatchUnassignedCategory(t *testing.T) {
	r := classifiedRecord(classifier.Domestic, "A")
	r.Set(schema.AddressType, "")
	errs := ValidateBatch([]schema.Record{r}, "A")
	require.Len(t, errs, 1)
	assert.Equal(t, schema.AddressType, errs[0].Field)
}

func TestValidateBatchLetterCodeMismatch(t *testing.T) {
	r := classifiedRecord(classifier.Domestic, "R")
	errs := ValidateBatch([]schema.Record{r}, "RC")
	require.Len(t, errs, 1)
	assert.Equal(t, schema.LetterCode, errs[0].Field)
	assert.Contains(t, errs[0].Message, `"R"`)
}

func TestValidateBatchCollectsAllFailures(t *testing.T) {
	good := classifiedRecord(classifier.Domestic, "A")
	unassigned := classifiedRecord(classifier.Domestic, "A")
	unassigned.Set(schema.AddressType, "")
	mismatched := classifiedRecord(classifier.Domestic, "R")

	errs := ValidateBatch([]schema.Record{good, unassigned, mismatched}, "A")
	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].RecordIndex)
	assert.Equal(t, 2, errs[1].RecordIndex)
}

func TestFormatErrors(t *testing.T) {
	errs := []*ValidationError{
		{RecordIndex: 0, Message: "first"},
		{RecordIndex: 1, Field: schema.LetterCode, Message: "second"},
	}
	got := FormatErrors(errs)
	assert.Equal(t, "  - record 0: first\n  - record 1, field \"LetterCode\": second", got)
}
