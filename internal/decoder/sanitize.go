// =============================================================================
// Escheatment Mailing Preparation - Text Sanitization
// =============================================================================
//
// Input files come out of transfer-agent systems that mix encodings: mostly
// ASCII, with stray Latin-1 bytes, non-breaking spaces and the occasional
// UTF-8 replacement character. The mailing software downstream only accepts
// printable 7-bit ASCII, so every raw field passes through one explicit
// sanitization step before anything else looks at it.
//
// SUBSTITUTION TABLE:
//   - bytes that are not valid 7-bit ASCII        -> single space
//   - U+FFFD (replacement character)              -> single space
//   - U+00A0 (non-breaking space)                 -> single space
//   - U+00A6 (broken bar)                         -> single space
//
// After substitution, internal whitespace runs are collapsed to single
// spaces and the value is trimmed. The result is lossy but deterministic.
//
// =============================================================================

package decoder

import "strings"

// SanitizeASCII replaces every byte outside printable 7-bit ASCII with a
// space. The input is treated as raw bytes, not UTF-8: a multi-byte UTF-8
// sequence becomes one space per byte, which the later whitespace collapse
// folds back into a single space. The special code points called out in the
// substitution table (U+FFFD, U+00A0, U+00A6) are all non-ASCII and so fall
// out of the same rule.
func SanitizeASCII(raw []byte) string {
	out := make([]byte, len(raw))
	for i, b := range raw {
		if b > 0x7f {
			out[i] = ' '
		} else {
			out[i] = b
		}
	}
	return string(out)
}

// CollapseSpaces collapses internal whitespace runs to single spaces and
// trims leading and trailing whitespace.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanField sanitizes one raw field value to printable 7-bit ASCII with
// collapsed whitespace. This is the only cleaning applied to field values;
// both decoders route every value through it.
func CleanField(raw string) string {
	return CollapseSpaces(SanitizeASCII([]byte(raw)))
}
