// Package position parses user position lists such as "1,3-5" into
// zero-based half-open ranges.
package position

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a zero-based half-open interval [Start, End)
type Range struct {
	Start int
	End   int
}

// Len returns the number of positions covered by the range
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// String renders the range in the 1-based syntax accepted by Parse
func (r Range) String() string {
	if r.End-r.Start == 1 {
		return strconv.Itoa(r.End)
	}
	return fmt.Sprintf("%d-%d", r.Start+1, r.End)
}

// Clamp limits the range to [0, n). The result may be empty.
func (r Range) Clamp(n int) Range {
	start, end := r.Start, r.End
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// List is an ordered sequence of ranges. Order and duplicates are kept
// exactly as the user wrote them.
type List []Range

// String renders the list in the syntax accepted by Parse
func (l List) String() string {
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
