package pipeline

import (
	"encoding/csv"
	"io"
	"unicode/utf8"

	"github.com/ppiankov/cutr/internal/model"
)

// NewRecordReader returns a reader that splits r into records on delim.
// Records may have different lengths; quoting follows encoding/csv with
// lazy quotes.
func NewRecordReader(r io.Reader, delim byte) (*csv.Reader, error) {
	if err := CheckRecordDelimiter(delim); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = rune(delim)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	return reader, nil
}

// CheckRecordDelimiter rejects bytes the record reader cannot split on
func CheckRecordDelimiter(delim byte) error {
	switch {
	case delim >= utf8.RuneSelf:
		return model.ConfigErrorf("--delim %q must be an ASCII character in field mode", string([]byte{delim}))
	case delim == '"', delim == '\r', delim == '\n':
		return model.ConfigErrorf("--delim %q cannot be used to split fields", string([]byte{delim}))
	}
	return nil
}
