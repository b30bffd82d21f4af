package describe

import "encoding/base64"

// Allows reports whether a picklist option whose applicability mask is
// validFor is legal when the controlling field's option at index idx is
// selected. Masks are base64-encoded byte strings with bits numbered
// most-significant first within each byte. Malformed or absent masks
// decode to "no bits set", and an out-of-range index is simply not
// allowed; decoding never fails.
func Allows(validFor string, idx int) bool {
	if validFor == "" || idx < 0 {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(validFor)
	if err != nil {
		return false
	}
	byteIdx := idx / 8
	if byteIdx >= len(raw) {
		return false
	}
	return raw[byteIdx]&(1<<uint(7-idx%8)) != 0
}
