package paroot

import (
	"errors"
	"io"
)

// errMockRead is returned by a mockSource while it still has failures queued.
var errMockRead = errors.New("mock read failure")

// mockSource implements lineSource for testing.
//
// It replays a fixed input and can be told to fail a number of reads first,
// which lets tests drive the IOFailure path without a broken file descriptor.
type mockSource struct {
	input    []byte // Pre-configured input sequence
	inputPos int    // Current position in the input sequence
	failures int    // Remaining reads that fail with errMockRead
	closed   bool   // Set by Close for test verification
}

func newMockSource(input string) *mockSource {
	return &mockSource{input: []byte(input)}
}

func newFailingMockSource(input string, failures int) *mockSource {
	return &mockSource{input: []byte(input), failures: failures}
}

func (m *mockSource) ReadByte() (byte, error) {
	if m.failures > 0 {
		m.failures--
		return 0, errMockRead
	}
	if m.inputPos >= len(m.input) {
		return 0, io.EOF
	}
	c := m.input[m.inputPos]
	m.inputPos++
	return c, nil
}

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}
