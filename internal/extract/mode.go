package extract

import (
	"strings"

	"github.com/ppiankov/cutr/internal/model"
	"github.com/ppiankov/cutr/internal/position"
)

// Mode is the selected extraction strategy. The set of implementations is
// closed: FieldMode, ByteMode and CharMode.
type Mode interface {
	Kind() model.SelectionKind
	Positions() position.List
	isMode()
}

// LineMode is a Mode that operates on a raw line of text
type LineMode interface {
	Mode
	Extract(line string) string
}

// FieldMode selects delimiter-separated cells
type FieldMode struct {
	List position.List
}

// ByteMode selects raw bytes
type ByteMode struct {
	List position.List
}

// CharMode selects Unicode scalar values
type CharMode struct {
	List position.List
}

func (FieldMode) Kind() model.SelectionKind { return model.SelectFields }
func (ByteMode) Kind() model.SelectionKind  { return model.SelectBytes }
func (CharMode) Kind() model.SelectionKind  { return model.SelectChars }

func (m FieldMode) Positions() position.List { return m.List }
func (m ByteMode) Positions() position.List  { return m.List }
func (m CharMode) Positions() position.List  { return m.List }

func (FieldMode) isMode() {}
func (ByteMode) isMode()  {}
func (CharMode) isMode()  {}

// Extract joins the selected cells of record with delim
func (m FieldMode) Extract(record []string, delim byte) (string, error) {
	return Fields(record, m.List, delim)
}

// Extract returns the selected bytes of line, decoded lossily
func (m ByteMode) Extract(line string) string {
	return Bytes(line, m.List)
}

// Extract returns the selected characters of line
func (m CharMode) Extract(line string) string {
	return Chars(line, m.List)
}

// NewMode parses list and wraps it in the variant named by kind
func NewMode(kind model.SelectionKind, list string) (Mode, error) {
	positions, err := position.Parse(list)
	if err != nil {
		return nil, err
	}

	switch kind {
	case model.SelectFields:
		return FieldMode{List: positions}, nil
	case model.SelectBytes:
		return ByteMode{List: positions}, nil
	case model.SelectChars:
		return CharMode{List: positions}, nil
	default:
		return nil, model.ConfigErrorf("unknown selection kind %q", kind)
	}
}

// FromSelections builds the mode from the selections the user supplied.
// Exactly one selection is required.
func FromSelections(sels []model.Selection) (Mode, error) {
	switch len(sels) {
	case 0:
		return nil, model.ConfigErrorf("Must have --fields, --bytes or --chars")
	case 1:
	default:
		return nil, model.ConfigErrorf("--fields, --bytes and --chars are mutually exclusive (got %s)", describe(sels))
	}

	return NewMode(sels[0].Kind, sels[0].List)
}

func describe(sels []model.Selection) string {
	flags := make([]string, len(sels))
	for i, sel := range sels {
		flags[i] = "--" + string(sel.Kind)
	}
	return strings.Join(flags, ", ")
}
