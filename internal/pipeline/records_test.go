package pipeline

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/ppiankov/cutr/internal/model"
)

func TestNewRecordReader(t *testing.T) {
	reader, err := NewRecordReader(strings.NewReader("a;b;c\n\"x;y\";z\nsolo\n"), ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		got = append(got, append([]string(nil), record...))
	}

	want := [][]string{{"a", "b", "c"}, {"x;y", "z"}, {"solo"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCheckRecordDelimiter(t *testing.T) {
	for _, d := range []byte{',', '\t', ';', '|', ' '} {
		if err := CheckRecordDelimiter(d); err != nil {
			t.Errorf("%q: unexpected error %v", d, err)
		}
	}
	for _, d := range []byte{'"', '\r', '\n', 0x80, 0xff} {
		if err := CheckRecordDelimiter(d); !errors.Is(err, model.ErrConfig) {
			t.Errorf("%q: expected ErrConfig, got %v", d, err)
		}
	}
}
