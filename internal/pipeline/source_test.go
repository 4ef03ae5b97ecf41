package pipeline

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_Stdin(t *testing.T) {
	rc, err := Open(StdinName, strings.NewReader("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "data" {
		t.Errorf("expected stdin contents, got %q", data)
	}
}

func TestOpen_Missing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nope")
	_, err := Open(name, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	srcErr := &SourceError{Name: name, Err: err}
	if srcErr.Error() != name+": no such file or directory" {
		t.Errorf("unexpected message %q", srcErr.Error())
	}
	if !errors.Is(srcErr, os.ErrNotExist) {
		t.Error("expected SourceError to unwrap to os.ErrNotExist")
	}
}
