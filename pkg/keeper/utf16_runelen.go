//go:build go1.23

package keeper

import "unicode/utf16"

// utf16RuneLen reports the number of 16-bit words in the UTF-16 encoding of r,
// or -1 if r is not a valid rune to encode in UTF-16.
func utf16RuneLen(r rune) int { return utf16.RuneLen(r) }
