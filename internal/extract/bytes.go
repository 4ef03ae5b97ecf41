package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/cutr/internal/position"
	"golang.org/x/text/encoding/unicode"
)

// Bytes returns the bytes of line selected by list, concatenated in list
// order. Every range is decoded on its own; a range that splits a
// multi-byte character yields U+FFFD for the broken part.
func Bytes(line string, list position.List) string {
	var buf strings.Builder
	for _, r := range list {
		r = r.Clamp(len(line))
		buf.WriteString(decodeLossy(line[r.Start:r.End]))
	}

	return buf.String()
}

// decodeLossy replaces invalid UTF-8 sequences with U+FFFD
func decodeLossy(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	decoded, err := unicode.UTF8.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return decoded
}
