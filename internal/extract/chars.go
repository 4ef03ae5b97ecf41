package extract

import (
	"strings"

	"github.com/ppiankov/cutr/internal/position"
)

// Chars returns the characters of line selected by list, concatenated in
// list order. Ranges are clamped to the line length, so this never fails.
// Each Unicode scalar value counts as one character; combining sequences
// are not merged.
func Chars(line string, list position.List) string {
	runes := []rune(line)

	var buf strings.Builder
	for _, r := range list {
		r = r.Clamp(len(runes))
		buf.WriteString(string(runes[r.Start:r.End]))
	}

	return buf.String()
}
