package position

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  List
	}{
		{"1", List{{0, 1}}},
		{"1,3-5", List{{0, 1}, {2, 5}}},
		{"001", List{{0, 1}}},
		{"1-2", List{{0, 2}}},
		{"3,1", List{{2, 3}, {0, 1}}},
		{"1,1", List{{0, 1}, {0, 1}}},
		{"1-3,2-4", List{{0, 3}, {1, 4}}},
		{"10-20,5", List{{9, 20}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParse_SingleIndexProperty(t *testing.T) {
	for n := 1; n <= 200; n++ {
		got, err := Parse(strconv.Itoa(n))
		if err != nil {
			t.Fatalf("%d: unexpected error: %v", n, err)
		}
		want := List{{n - 1, n}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%d: expected %v, got %v", n, want, got)
		}
	}
}

func TestParse_RangeProperty(t *testing.T) {
	for n := 1; n <= 30; n++ {
		for m := 1; m <= 30; m++ {
			token := strconv.Itoa(n) + "-" + strconv.Itoa(m)
			got, err := Parse(token)

			if n >= m {
				if !errors.Is(err, ErrInvertedRange) {
					t.Errorf("%s: expected inverted range error, got %v", token, err)
				}
				continue
			}

			if err != nil {
				t.Fatalf("%s: unexpected error: %v", token, err)
			}
			want := List{{n - 1, m}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%s: expected %v, got %v", token, want, got)
			}
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input   string
		message string
		kind    error
	}{
		{"", `illegal list value: ""`, ErrIllegalValue},
		{"0", `illegal list value: "0"`, ErrIllegalValue},
		{"-1", `illegal list value: "-1"`, ErrIllegalValue},
		{"+1", `illegal list value: "+1"`, ErrIllegalValue},
		{"a", `illegal list value: "a"`, ErrIllegalValue},
		{"1,a", `illegal list value: "a"`, ErrIllegalValue},
		{"1,", `illegal list value: ""`, ErrIllegalValue},
		{"1.5", `illegal list value: "1.5"`, ErrIllegalValue},
		{" 1", `illegal list value: " 1"`, ErrIllegalValue},
		{"1-", `illegal list value: "1-"`, ErrIllegalValue},
		{"-", `illegal list value: "-"`, ErrIllegalValue},
		{"1-2-3", `illegal list value: "1-2-3"`, ErrIllegalValue},
		{"+1-2", `illegal list value: "+1-2"`, ErrIllegalValue},
		{"1-+2", `illegal list value: "1-+2"`, ErrIllegalValue},
		{"0-3", `illegal list value: "0"`, ErrIllegalValue},
		{"2-0", `illegal list value: "0"`, ErrIllegalValue},
		{"99999999999999999999", `illegal list value: "99999999999999999999"`, ErrIllegalValue},
		{"5-2", "First number in range (5) must be lower than second number (2)", ErrInvertedRange},
		{"2-2", "First number in range (2) must be lower than second number (2)", ErrInvertedRange},
		{"1,7-3,9", "First number in range (7) must be lower than second number (3)", ErrInvertedRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected error, got %v", got)
			}
			if got != nil {
				t.Errorf("expected no partial result, got %v", got)
			}
			if err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, err.Error())
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("expected %v, got %v", tt.kind, err)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("expected ErrSyntax to match %v", err)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParse_PlusAlwaysRejected(t *testing.T) {
	for _, token := range []string{"+1", "+01", "+9", "+10", "+1-5", "1,+2"} {
		if _, err := Parse(token); !errors.Is(err, ErrIllegalValue) {
			t.Errorf("%q: expected illegal value error, got %v", token, err)
		}
	}
}

func TestList_StringRoundTrip(t *testing.T) {
	for _, input := range []string{"1", "1,3-5", "2,1", "4-9,1,1", "1-2"} {
		list := MustParse(input)
		if list.String() != input {
			t.Errorf("expected %q, got %q", input, list.String())
		}
		again, err := Parse(list.String())
		if err != nil {
			t.Fatalf("%q: reparse failed: %v", input, err)
		}
		if !reflect.DeepEqual(list, again) {
			t.Errorf("%q: reparse mismatch: %v vs %v", input, list, again)
		}
	}
}

func TestRange_Clamp(t *testing.T) {
	tests := []struct {
		r    Range
		n    int
		want Range
	}{
		{Range{0, 3}, 5, Range{0, 3}},
		{Range{2, 8}, 5, Range{2, 5}},
		{Range{6, 8}, 5, Range{5, 5}},
		{Range{0, 1}, 0, Range{0, 0}},
	}

	for _, tt := range tests {
		got := tt.r.Clamp(tt.n)
		if got != tt.want {
			t.Errorf("%v.Clamp(%d): expected %v, got %v", tt.r, tt.n, tt.want, got)
		}
		if got.Len() > tt.n {
			t.Errorf("%v.Clamp(%d): length %d exceeds %d", tt.r, tt.n, got.Len(), tt.n)
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("0")
}
