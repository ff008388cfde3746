package knuckleball

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	xtransform "golang.org/x/text/transform"
)

// bomStripper strips a leading UTF-8 byte-order mark from incoming
// String literals.
var bomStripper = unicode.UTF8BOM.NewDecoder()

// sanitizeStringLiteral strips a leading BOM (harmless whether or not
// the client's editor added one) and rejects a literal that is not
// well-formed UTF-8. Byte-wise ordering, not Unicode collation, is all
// this server ever promises for String comparison, so no further
// normalization is applied.
func sanitizeStringLiteral(s string) (string, error) {
	// Validate before decoding: the decoder substitutes replacement runes
	// for invalid bytes, which would hide them from the check.
	if !utf8.ValidString(s) {
		return "", newError(ExcInvalidArgument, "invalid UTF-8 in String literal")
	}
	clean, _, err := xtransform.String(bomStripper, s)
	if err != nil {
		return "", newError(ExcInvalidArgument, "invalid text encoding")
	}
	return clean, nil
}
