package paroot

import (
	"bufio"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// lineSource abstracts where prompt input comes from.
//
// Implementations:
//   - readerSource: any io.Reader, standard input by default
//   - ttySource: the controlling terminal via go-tty
//   - mockSource: scripted input for tests
type lineSource interface {
	ReadByte() (byte, error) // Read the next input byte; io.EOF at end-of-stream
	Close() error            // Release the source; safe to call more than once
}

// readerSource reads from a plain io.Reader.
//
// The bufio.Reader is kept for the lifetime of the Reader so bytes buffered
// past the end of one line are still there for the next prompt.
type readerSource struct {
	in io.ByteReader
}

func newReaderSource(in io.Reader) *readerSource {
	if br, ok := in.(io.ByteReader); ok {
		return &readerSource{in: br}
	}
	return &readerSource{in: bufio.NewReader(in)}
}

func (s *readerSource) ReadByte() (byte, error) {
	return s.in.ReadByte()
}

func (s *readerSource) Close() error {
	return nil
}

// ttySource reads from the controlling terminal even when standard input is
// redirected.
//
// go-tty switches the terminal out of canonical mode, so echo and line
// editing come from tty.ReadString. Each completed line is queued with its
// '\n' restored and handed out byte by byte.
type ttySource struct {
	tty     *tty.TTY
	pending []byte
	closed  bool // Guards against double close, which panics on Windows
}

func newTTYSource() (*ttySource, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &ttySource{tty: t}, nil
}

func (s *ttySource) ReadByte() (byte, error) {
	if len(s.pending) == 0 {
		if s.closed {
			return 0, io.EOF
		}
		line, err := s.tty.ReadString()
		if err != nil {
			return 0, err
		}
		s.pending = append([]byte(line), '\n')
	}
	c := s.pending[0]
	s.pending = s.pending[1:]
	return c, nil
}

func (s *ttySource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.tty.Close()
}

// stdout returns a writer for standard output that understands ANSI colors
// on every platform.
func stdout() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether standard input is a terminal.
//
// Callers reading from a pipe or a file usually want StopAtEOF or Bounded
// instead of the default policy, which retries forever.
func IsInteractive() bool {
	return isTerminal(os.Stdin)
}
