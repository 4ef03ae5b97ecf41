package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/cutr/internal/position"
)

// ErrFieldIndex matches every FieldIndexError
var ErrFieldIndex = errors.New("field index out of range")

// FieldIndexError reports a field range that reaches past the end of a
// record. Field ranges are never truncated silently.
type FieldIndexError struct {
	Range position.Range
	Cells int
}

func (e *FieldIndexError) Error() string {
	return fmt.Sprintf("field range %s is out of bounds for a record with %d fields", e.Range, e.Cells)
}

func (e *FieldIndexError) Is(target error) bool {
	return target == ErrFieldIndex
}

// Fields selects cells of record for every range in list and joins all of
// them with delim, including across range boundaries.
func Fields(record []string, list position.List, delim byte) (string, error) {
	var cells []string
	for _, r := range list {
		if r.End > len(record) || r.Start > r.End {
			return "", &FieldIndexError{Range: r, Cells: len(record)}
		}
		cells = append(cells, record[r.Start:r.End]...)
	}

	return strings.Join(cells, string([]byte{delim})), nil
}
