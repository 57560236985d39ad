package paroot

import "fmt"

// FailureKind tells a RetryPolicy why an attempt failed.
type FailureKind int

const (
	// ParseInvalid means a line was read but is not a valid value.
	ParseInvalid FailureKind = iota
	// IOFailure means the input stream itself could not be read.
	IOFailure
)

// String returns the name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case ParseInvalid:
		return "parse_invalid"
	case IOFailure:
		return "io_failure"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure describes one failed prompt attempt.
type Failure struct {
	Kind    FailureKind // Why the attempt failed
	Attempt int         // 1 for the first attempt of a prompt call
	Line    string      // The rejected line (empty for IOFailure)
	EOF     bool        // The line was ended by end-of-stream, not '\n'
	Err     error       // ErrInvalidInput or ErrIO chain
}

// Decision is what a RetryPolicy wants the prompt to do next.
type Decision int

const (
	// Retry prints the retry notice and reads again.
	Retry Decision = iota
	// RetrySilently reads again without printing anything.
	RetrySilently
	// Abort stops the prompt; the caller gets an *AttemptError.
	Abort
)

// RetryPolicy decides whether a prompt keeps asking after a failed attempt.
// Next is called once per failed attempt, before any notice is written.
type RetryPolicy interface {
	Next(f Failure) Decision
}

// PolicyFunc adapts an ordinary function to RetryPolicy.
//
// Example:
//
//	// Give up on the first I/O failure but keep asking on bad input.
//	policy := paroot.PolicyFunc(func(f paroot.Failure) paroot.Decision {
//		if f.Kind == paroot.IOFailure {
//			return paroot.Abort
//		}
//		return paroot.Retry
//	})
type PolicyFunc func(f Failure) Decision

// Next calls f.
func (fn PolicyFunc) Next(f Failure) Decision {
	return fn(f)
}

// Unbounded returns the default policy: retry forever with a notice.
//
// It suits a person typing at a terminal. With piped or file input an
// exhausted stream reads as empty lines, so numeric prompts never return;
// wrap it in StopAtEOF for that case.
func Unbounded() RetryPolicy {
	return PolicyFunc(func(Failure) Decision {
		return Retry
	})
}

// Bounded retries with a notice until maxAttempts attempts have failed, then
// aborts. maxAttempts <= 0 behaves like Unbounded.
func Bounded(maxAttempts int) RetryPolicy {
	return PolicyFunc(func(f Failure) Decision {
		if maxAttempts > 0 && f.Attempt >= maxAttempts {
			return Abort
		}
		return Retry
	})
}

// Silent retries without printing any notice until maxAttempts attempts have
// failed. maxAttempts <= 0 never aborts.
func Silent(maxAttempts int) RetryPolicy {
	return PolicyFunc(func(f Failure) Decision {
		if maxAttempts > 0 && f.Attempt >= maxAttempts {
			return Abort
		}
		return RetrySilently
	})
}

// StopAtEOF aborts as soon as a failed attempt was caused by end-of-stream
// and otherwise defers to next.
func StopAtEOF(next RetryPolicy) RetryPolicy {
	if next == nil {
		next = Unbounded()
	}
	return PolicyFunc(func(f Failure) Decision {
		if f.EOF {
			return Abort
		}
		return next.Next(f)
	})
}
