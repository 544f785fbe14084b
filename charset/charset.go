// Package charset implements the character set variants of the Swiss Payment
// Standards and the cleanup of free text against them.
//
// Membership is tested per Unicode code point. The cleanup replaces
// unsupported code points with supported ones of similar meaning where
// possible, falling back to a single dot.
package charset

// CharacterSet is a closed set of variants; each variant defines the
// characters allowed in payment fields.
type CharacterSet int

const (
	// Latin1Subset is the restrictive character set from the original Swiss
	// Payment Standard and original QR bill specification: a subset of the
	// printable Latin-1 characters.
	Latin1Subset CharacterSet = iota

	// ExtendedLatin covers all printable characters of the Basic Latin,
	// Latin-1 Supplement and Latin Extended-A blocks plus a few additional
	// characters such as the Euro sign. Introduced with SPS 2022.
	ExtendedLatin

	// FullUnicode accepts every code point. It is meant for decoding
	// untrusted QR code text and must not be used to produce conforming
	// payment data.
	FullUnicode
)

// Contains reports whether the code point r is allowed in this character set.
func (cs CharacterSet) Contains(r rune) bool {
	switch cs {
	case Latin1Subset:
		return inLatin1Subset(r)
	case ExtendedLatin:
		return inExtendedLatin(r)
	default:
		return true
	}
}

func inLatin1Subset(r rune) bool {
	if r < 0x20 {
		return false
	}
	if r == 0x5e {
		return false
	}
	if r <= 0x7e {
		return true
	}
	if r == 0xa3 || r == 0xb4 {
		return true
	}
	if r < 0xc0 || r > 0xfd {
		return false
	}
	if r == 0xc3 || r == 0xc5 || r == 0xc6 {
		return false
	}
	if r == 0xd0 || r == 0xd5 || r == 0xd7 || r == 0xd8 {
		return false
	}
	if r == 0xdd || r == 0xde {
		return false
	}
	if r == 0xe3 || r == 0xe5 || r == 0xe6 {
		return false
	}
	return r != 0xf0 && r != 0xf5 && r != 0xf8
}

func inExtendedLatin(r rune) bool {
	// Basic Latin
	if r >= 0x0020 && r <= 0x007e {
		return true
	}
	// Latin-1 Supplement and Latin Extended-A
	if r >= 0x00a0 && r <= 0x017f {
		return true
	}
	// Romanian letters with comma below
	if r >= 0x0218 && r <= 0x021b {
		return true
	}
	// Euro sign
	return r == 0x20ac
}

// IsValidText reports whether text consists only of characters allowed in the
// character set. Accents built from a base letter plus a combining mark are
// not recognized; such text is reported as invalid.
func IsValidText(text string, cs CharacterSet) bool {
	for _, r := range text {
		if !cs.Contains(r) {
			return false
		}
	}
	return true
}
