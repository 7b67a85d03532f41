// Package conv converts between byte offsets and character offsets in UTF-8
// text.
//
// Matching works on byte offsets; callers outside Go usually count
// characters. Invalid UTF-8 bytes count as one character each, the same way
// a range loop over a string decodes them.
package conv

import "unicode/utf8"

// RuneOffsets converts ascending byte offsets into character offsets.
// The offsets must lie on rune boundaries of text and be in ascending order;
// the conversion is a single pass over text.
// Panics if an offset is out of range or out of order.
func RuneOffsets(text string, byteOffsets []int) []int {
	if len(byteOffsets) == 0 {
		return nil
	}

	out := make([]int, len(byteOffsets))
	pos, runes := 0, 0
	for i, off := range byteOffsets {
		if off < pos || off > len(text) {
			panic("conv: byte offset out of range or not ascending")
		}
		runes += utf8.RuneCountInString(text[pos:off])
		pos = off
		out[i] = runes
	}
	return out
}

// ByteOffset returns the byte offset of the character at runeOffset.
// Offsets past the end of text clamp to len(text); negative offsets clamp to 0.
func ByteOffset(text string, runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	n := 0
	for i := range text {
		if n == runeOffset {
			return i
		}
		n++
	}
	return len(text)
}
