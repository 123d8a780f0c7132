// Package textenc re-encodes the UTF-16 code units returned by the native
// text layer into UTF-8.
package textenc

import "strings"

// Surrogate code unit range. Units in this range would need a pair to form
// a code point outside the Basic Multilingual Plane; the encoder does not
// combine pairs and substitutes U+FFFD for each unit instead.
const (
	surrMin = 0xD800
	surrMax = 0xDFFF
)

// replacement is U+FFFD encoded as UTF-8.
const replacement = "\xEF\xBF\xBD"

// Encode converts UTF-16 code units to UTF-8 using the three-range BMP
// rule: one byte below 0x80, two bytes below 0x800, three bytes otherwise.
// Surrogate code units are replaced with U+FFFD; the count of replaced
// units is returned alongside the encoded string.
func Encode(units []uint16) (string, int) {
	var b strings.Builder
	n := Append(&b, units)
	return b.String(), n
}

// Append encodes units into b and returns the number of surrogate code
// units replaced with U+FFFD.
func Append(b *strings.Builder, units []uint16) int {
	replaced := 0
	b.Grow(len(units))
	for _, u := range units {
		switch {
		case u < 0x80:
			b.WriteByte(byte(u))
		case u < 0x800:
			b.WriteByte(0xC0 | byte(u>>6))
			b.WriteByte(0x80 | byte(u&0x3F))
		case u >= surrMin && u <= surrMax:
			b.WriteString(replacement)
			replaced++
		default:
			b.WriteByte(0xE0 | byte(u>>12))
			b.WriteByte(0x80 | byte(u>>6&0x3F))
			b.WriteByte(0x80 | byte(u&0x3F))
		}
	}
	return replaced
}
