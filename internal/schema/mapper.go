// =============================================================================
// Escheatment Mailing Preparation - Field Mapper
// =============================================================================
//
// The field mapper resolves each canonical field to a source column index in
// an arbitrary input header. Spreadsheet exports arrive with varying column
// names ("XRX Acct Seq", "Issue Name", "Eligibility State"), so columns are
// located by pattern rather than by exact name.
//
// MATCHING CONTRACT:
//   - Header column names are whitespace-collapsed before matching.
//   - For each canonical field, in canonical order, the header is scanned
//     left-to-right; the first column whose name matches the field's pattern
//     anchored at the start of the string claims that index.
//   - Fields are matched independently: a column may satisfy more than one
//     pattern and be claimed by more than one field.
//   - A field with no matching column resolves to NotFound; consumers
//     substitute an empty value rather than fail (some fields, e.g. LT, are
//     optional by design).
//
// =============================================================================

package schema

import (
	"regexp"
	"strings"
)

// NotFound is the resolved index for a canonical field with no matching
// header column.
const NotFound = -1

// Mapping is the result of resolving the canonical field list against one
// input header.
type Mapping struct {
	// Indices holds one source column index per canonical field, in
	// canonical order. Unresolved fields hold NotFound.
	Indices []int

	// Matched lists the header column names that were claimed by a
	// canonical field, in resolution order. Diagnostic only.
	Matched []string

	// Unmatched lists the header column names no canonical field claimed.
	// Diagnostic only; downstream logic never consults it.
	Unmatched []string
}

// MapHeader resolves every canonical field against the given header row.
// It never fails: unresolved fields are reported through NotFound indices
// and the diagnostic lists.
func MapHeader(header []string) *Mapping {
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.Join(strings.Fields(col), " ")
	}

	mapping := &Mapping{Indices: make([]int, len(Fields))}
	claimed := make([]bool, len(columns))

	for fi, field := range Fields {
		mapping.Indices[fi] = NotFound
		for ci, col := range columns {
			if !matchesAtStart(field.Pattern, col) {
				continue
			}
			mapping.Indices[fi] = ci
			if !claimed[ci] {
				claimed[ci] = true
				mapping.Matched = append(mapping.Matched, col)
			}
			break
		}
	}

	for ci, col := range columns {
		if !claimed[ci] {
			mapping.Unmatched = append(mapping.Unmatched, col)
		}
	}

	return mapping
}

// matchesAtStart reports whether the pattern matches col anchored at the
// beginning of the string (the pattern itself carries no ^ anchor).
func matchesAtStart(pattern *regexp.Regexp, col string) bool {
	loc := pattern.FindStringIndex(col)
	return loc != nil && loc[0] == 0
}
