package formatter

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"
)

// Sink is a buffered output destination. The first write error is kept
// and returned by every later call.
type Sink struct {
	w      *bufio.Writer
	closer io.Closer
	err    error
}

func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// Open resolves an output destination. "" and "-" are stdout, which is
// never closed; anything else is a file, created along with its parent
// directories.
func Open(dest string) (*Sink, error) {
	if dest == "" || dest == "-" {
		return NewSink(os.Stdout), nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, ee.Wrapf(err, "cannot create directory for %s", dest)
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot open %s", dest)
	}

	s := NewSink(f)
	s.closer = f
	return s, nil
}

func (s *Sink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

func (s *Sink) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *Sink) Flush() error {
	if s.err != nil {
		return s.err
	}

	if err := s.w.Flush(); err != nil {
		s.err = err
	}
	return s.err
}

func (s *Sink) Err() error {
	return s.err
}

// Close flushes and releases the destination. It is safe to call more
// than once.
func (s *Sink) Close() error {
	err := s.Flush()

	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
		s.closer = nil
	}

	return err
}
