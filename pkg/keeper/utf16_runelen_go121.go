//go:build !go1.23

package keeper

// utf16RuneLen reports the number of 16-bit words in the UTF-16 encoding of r,
// or -1 if r is not a valid rune to encode in UTF-16. It mirrors
// unicode/utf16.RuneLen, which is only available from Go 1.23.
func utf16RuneLen(r rune) int {
	const (
		surr1    = 0xd800
		surr3    = 0xe000
		surrSelf = 0x10000
		maxRune  = '\U0010FFFF'
	)
	switch {
	case 0 <= r && r < surr1, surr3 <= r && r < surrSelf:
		return 1
	case surrSelf <= r && r <= maxRune:
		return 2
	default:
		return -1
	}
}
