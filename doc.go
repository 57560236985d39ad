// Package paroot provides crash-free input prompts for people learning Go.
//
// Reading a number from the keyboard normally means opening a reader,
// trimming the newline, calling strconv and deciding what to do when the
// user types something that is not a number. paroot folds all of that into
// one call per type that keeps asking until the input is valid.
//
// Key Features:
//
//   - One prompt function per primitive type: byte, int32, int64, float32,
//     float64 and string
//   - Strict whole-line parsing: "12 " or "1e3x" are rejected, not truncated
//   - Automatic retry with a short "Retry: " notice on invalid input
//   - Pluggable retry policies for tests and piped input
//   - Array printing helpers with fixed, predictable formatting
//   - Optional colored prompts and reading from the controlling terminal
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/nao1215/paroot"
//	)
//
//	func main() {
//		age := paroot.GetInt("How old are you? ")
//		height := paroot.GetDouble("How tall are you (m)? ")
//		fmt.Printf("%d years, %.2f m\n", age, height)
//
//		paroot.PrintArrayInt([]int32{1, 2, 3}) // [1, 2, 3]
//	}
//
// Retry Policies:
//
// The package-level functions retry forever. That is what you want when a
// person is typing, but a program reading from a pipe or a file would spin
// on end-of-stream. Create a Reader with a policy instead:
//
//	r, err := paroot.New(
//		paroot.WithInput(os.Stdin),
//		paroot.WithPolicy(paroot.StopAtEOF(paroot.Bounded(3))),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	n, err := r.GetInt("Count: ")
//	if errors.Is(err, paroot.ErrRetryLimit) {
//		log.Fatal("no valid count given")
//	}
//
// Error Handling:
//
//   - paroot.ErrInvalidInput: a line did not match the requested type
//   - paroot.ErrIO: the input stream itself failed
//   - paroot.ErrRetryLimit: the retry policy gave up (wrapped in *AttemptError)
//
// End-of-stream is never an error on its own: it is read as an empty line.
//
// Thread Safety:
//
// A Reader is not safe for concurrent use. The package-level functions share
// one Reader over standard input and must be called from a single goroutine.
package paroot
