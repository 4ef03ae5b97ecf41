package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrSyntax matches every error returned by Parse
	ErrSyntax = errors.New("range list syntax error")
	// ErrIllegalValue is a token that is not a positive integer
	ErrIllegalValue = errors.New("illegal list value")
	// ErrInvertedRange is an N-M token with N >= M
	ErrInvertedRange = errors.New("inverted range")
)

var rangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ParseError describes the first token of a list that failed to parse
type ParseError struct {
	Token string // Offending token, verbatim
	First int    // 1-based bounds of an inverted range
	Last  int
	Err   error // ErrIllegalValue or ErrInvertedRange
}

func (e *ParseError) Error() string {
	if e.Err == ErrInvertedRange {
		return fmt.Sprintf("First number in range (%d) must be lower than second number (%d)", e.First, e.Last)
	}
	return fmt.Sprintf("illegal list value: \"%s\"", e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrSyntax
}

// Parse converts a comma-separated list of 1-based positions ("N") and
// inclusive ranges ("N-M") into zero-based half-open ranges.
// Any bad token fails the whole list.
func Parse(text string) (List, error) {
	tokens := strings.Split(text, ",")

	list := make(List, 0, len(tokens))
	for _, token := range tokens {
		r, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}

	return list, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level values.
func MustParse(text string) List {
	list, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return list
}

func parseToken(token string) (Range, error) {
	n, err := parseIndex(token)
	if err == nil {
		return Range{Start: n, End: n + 1}, nil
	}

	// Not a bare index. Fall back to N-M; if that grammar does not match
	// either, the bare index error stands.
	m := rangePattern.FindStringSubmatch(token)
	if m == nil {
		return Range{}, err
	}

	first, err := parseIndex(m[1])
	if err != nil {
		return Range{}, err
	}
	last, err := parseIndex(m[2])
	if err != nil {
		return Range{}, err
	}

	if first >= last {
		return Range{}, &ParseError{
			Token: token,
			First: first + 1,
			Last:  last + 1,
			Err:   ErrInvertedRange,
		}
	}

	return Range{Start: first, End: last + 1}, nil
}

// parseIndex converts a 1-based position to a 0-based index
func parseIndex(token string) (int, error) {
	illegal := &ParseError{Token: token, Err: ErrIllegalValue}

	if strings.HasPrefix(token, "+") {
		return 0, illegal
	}

	n, err := strconv.ParseUint(token, 10, strconv.IntSize-1)
	if err != nil || n == 0 {
		return 0, illegal
	}

	return int(n) - 1, nil
}
