package paroot

import (
	"errors"
	"fmt"
	"io"
)

// initialLineCapacity is the starting size of the per-call line buffer.
const initialLineCapacity = 1024

// readLine reads one line from src.
//
// The returned line excludes the '\n' terminator and a '\r' directly before
// it. eof reports that the stream ended before a terminator was seen; a line
// cut short by end-of-stream is still returned, and an empty stream yields an
// empty line rather than an error. Any other read failure is reported as
// ErrIO.
//
// The buffer belongs to this call only and doubles whenever it is full.
func readLine(src lineSource) (line string, eof bool, err error) {
	buf := make([]byte, 0, initialLineCapacity)

	for {
		c, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return string(buf), true, nil
			}
			return "", false, fmt.Errorf("%w: %w", ErrIO, err)
		}

		if c == '\n' {
			if n := len(buf); n > 0 && buf[n-1] == '\r' {
				buf = buf[:n-1]
			}
			return string(buf), false, nil
		}

		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), 2*cap(buf))
			copy(grown, buf)
			buf = grown
		}
		buf = append(buf, c)
	}
}
