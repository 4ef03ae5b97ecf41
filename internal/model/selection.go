package model

// SelectionKind names the unit a position list applies to
type SelectionKind string

const (
	SelectFields SelectionKind = "fields" // Delimiter-separated cells
	SelectBytes  SelectionKind = "bytes"  // Raw bytes of the line
	SelectChars  SelectionKind = "chars"  // Unicode scalar values
)

// Selection is one position list supplied by the user, still unparsed
type Selection struct {
	Kind SelectionKind
	List string
}
