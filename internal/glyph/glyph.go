// Package glyph maps plain Latin letters and digits to their
// Mathematical Sans-Serif Bold equivalents.
//
// Bold glyphs live outside the Basic Multilingual Plane (4 bytes in UTF-8,
// a surrogate pair in UTF-16), so everything here works on runes.
package glyph

import "strings"

// boldMap is built once and never mutated.
var boldMap = map[rune]rune{
	// Uppercase
	'A': '𝗔', 'B': '𝗕', 'C': '𝗖', 'D': '𝗗', 'E': '𝗘', 'F': '𝗙', 'G': '𝗚',
	'H': '𝗛', 'I': '𝗜', 'J': '𝗝', 'K': '𝗞', 'L': '𝗟', 'M': '𝗠', 'N': '𝗡',
	'O': '𝗢', 'P': '𝗣', 'Q': '𝗤', 'R': '𝗥', 'S': '𝗦', 'T': '𝗧', 'U': '𝗨',
	'V': '𝗩', 'W': '𝗪', 'X': '𝗫', 'Y': '𝗬', 'Z': '𝗭',

	// Lowercase
	'a': '𝗮', 'b': '𝗯', 'c': '𝗰', 'd': '𝗱', 'e': '𝗲', 'f': '𝗳', 'g': '𝗴',
	'h': '𝗵', 'i': '𝗶', 'j': '𝗷', 'k': '𝗸', 'l': '𝗹', 'm': '𝗺', 'n': '𝗻',
	'o': '𝗼', 'p': '𝗽', 'q': '𝗾', 'r': '𝗿', 's': '𝘀', 't': '𝘁', 'u': '𝘂',
	'v': '𝘃', 'w': '𝘄', 'x': '𝘅', 'y': '𝘆', 'z': '𝘇',

	// Digits
	'0': '𝟬', '1': '𝟭', '2': '𝟮', '3': '𝟯', '4': '𝟰',
	'5': '𝟱', '6': '𝟲', '7': '𝟳', '8': '𝟴', '9': '𝟵',
}

// boldSet is the image of boldMap.
var boldSet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(boldMap))
	for _, b := range boldMap {
		set[b] = struct{}{}
	}
	return set
}()

// Size is the number of mapped characters.
const Size = 26 + 26 + 10

// Lookup returns the bold glyph for r and whether r is mapped.
func Lookup(r rune) (rune, bool) {
	b, ok := boldMap[r]
	return b, ok
}

// IsBold reports whether r is one of the bold glyphs produced by Bold.
func IsBold(r rune) bool {
	_, ok := boldSet[r]
	return ok
}

// Bold returns s with every mapped rune replaced by its bold glyph.
// Unmapped runes, including bold glyphs themselves, are copied unchanged,
// so the output always has the same number of runes as the input.
func Bold(s string) string {
	if s == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(s) * 4)
	for _, r := range s {
		if b, ok := boldMap[r]; ok {
			sb.WriteRune(b)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Table returns a copy of the mapping.
func Table() map[rune]rune {
	out := make(map[rune]rune, len(boldMap))
	for k, v := range boldMap {
		out[k] = v
	}
	return out
}
