package pipeline

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// StdinName is the source name that denotes standard input
const StdinName = "-"

// SourceError reports an input that could not be opened or read. The
// pipeline reports it and moves on to the next source.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return e.Name + ": " + reason(e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// reason drops the "open <name>" prefix that os adds, since the source
// name is already printed
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Op == "open" {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// Open opens a named source. StdinName returns stdin wrapped so that
// closing it is a no-op.
func Open(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == StdinName {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err == nil && info.IsDir() {
		_ = f.Close()
		return nil, errors.New("is a directory")
	}

	return f, nil
}
