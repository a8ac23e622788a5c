package parcel

import "strings"

// maskTail is appended after the surname initial regardless of the actual
// surname length, so masked names leak nothing about it.
const maskTail = "*****"

// MaskName masks a courier's full name for customer-facing texts: the first
// token is kept as-is, the last token is reduced to its first letter followed
// by exactly five asterisks.
//
//	MaskName("Ayşe Yılmaz") == "Ayşe Y*****"
//	MaskName("Bora Li")     == "Bora L*****"
//
// Middle tokens are dropped. A single-token name is returned unchanged, an
// empty name stays empty.
func MaskName(fullName string) string {
	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return tokens[0]
	}

	last := []rune(tokens[len(tokens)-1])
	return tokens[0] + " " + string(last[0]) + maskTail
}
