package xterm

import "golang.org/x/text/encoding/charmap"

// DecodeLegacyArt transcodes a single legacy-encoded byte (as found in
// CP437 box-drawing ANSI art, or Amiga ISO-8859-1 art) into its UTF-8
// rune, for callers feeding pre-UTF-8 terminal art through [Display]
// before styling it. charset nil defaults to [charmap.CodePage437],
// the common case for DOS-era ANSI art; the Amiga case uses
// [charmap.ISO8859_1].
func DecodeLegacyArt(b byte, charset *charmap.Charmap) rune {
	if charset == nil {
		charset = charmap.CodePage437
	}
	return charset.DecodeByte(b)
}

// DecodeLegacyArtString transcodes a full byte string through charset,
// one byte at a time, into a UTF-8 string suitable for [Display.Style]
// or [Display.Print].
func DecodeLegacyArtString(data []byte, charset *charmap.Charmap) string {
	if charset == nil {
		charset = charmap.CodePage437
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = charset.DecodeByte(b)
	}
	return string(runes)
}
