// Package main demonstrates reading piped input with a bounded retry policy.
//
// Try it with:
//
//	printf '3\nabc\n1.5\n' | go run ./example/batch
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/nao1215/paroot"
)

func main() {
	policy := paroot.Bounded(3)
	if !paroot.IsInteractive() {
		// A pipe runs dry; stop instead of reading empty lines forever.
		policy = paroot.StopAtEOF(policy)
	}

	r, err := paroot.New(
		paroot.WithPolicy(policy),
		paroot.WithOutput(os.Stderr),
		paroot.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	var sum float32
	for {
		v, err := r.GetFloat("value> ")
		if errors.Is(err, paroot.ErrRetryLimit) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		sum += v
	}

	fmt.Printf("sum: %.2f\n", sum)
}
