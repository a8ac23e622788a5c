package geo

import (
	"strings"
	"unicode"
)

// NormalizeCity folds a city name to its canonical lookup form: trimmed,
// lower-cased, with Turkish diacritics (ğ, ü, ş, ı, ö, ç) reduced to their
// ASCII base letters. Matching against region membership always goes through
// this form, so user input like "İSTANBUL" or "izmir " matches the canonical
// spellings in the region tables.
//
// The fold runs before lower-casing because the stdlib lower-casing of 'İ'
// produces a combining-dot sequence that would never match.
func NormalizeCity(city string) string {
	var b strings.Builder
	b.Grow(len(city))

	for _, r := range strings.TrimSpace(city) {
		switch r {
		case 'İ', 'I', 'ı':
			b.WriteRune('i')
		case 'Ğ', 'ğ':
			b.WriteRune('g')
		case 'Ü', 'ü':
			b.WriteRune('u')
		case 'Ş', 'ş':
			b.WriteRune('s')
		case 'Ö', 'ö':
			b.WriteRune('o')
		case 'Ç', 'ç':
			b.WriteRune('c')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
