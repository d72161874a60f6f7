package display

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize uppercases the first letter of s, leaving any leading
// non-letter characters in place. A sentence opening with a marked pronoun
// like "``e" comes out as "``E", and one opening with a quote keeps the
// quote ahead of the uppercased letter.
func Capitalize(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		head := cases.Upper(language.English).String(string(r))
		return s[:i] + head + s[i+utf8.RuneLen(r):]
	}
	return s
}
