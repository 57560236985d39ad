package paroot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Common errors
var (
	// ErrInvalidInput is the cause of a failed attempt whose line did not
	// match the requested type
	ErrInvalidInput = errors.New("invalid input")
	// ErrIO is returned when the input stream cannot be read
	ErrIO = errors.New("error reading input")
	// ErrRetryLimit is matched by the *AttemptError a prompt returns when
	// its RetryPolicy aborts
	ErrRetryLimit = errors.New("retry limit reached")
)

// AttemptError is returned when a RetryPolicy aborts a prompt.
//
// It matches ErrRetryLimit and the cause of the last failed attempt with
// errors.Is.
type AttemptError struct {
	Failure Failure // The attempt the policy gave up on
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Failure.Attempt, e.Failure.Err)
}

func (e *AttemptError) Unwrap() []error {
	return []error{ErrRetryLimit, e.Failure.Err}
}

// Config holds the configuration for a Reader.
type Config struct {
	Input       io.Reader    // Input stream (nil for os.Stdin)
	Output      io.Writer    // Prompt and notice output (nil for os.Stdout)
	Policy      RetryPolicy  // Retry policy (nil for Unbounded)
	ColorScheme *ColorScheme // Color scheme (nil for plain output)
	ForceColor  bool         // Apply ColorScheme even when Output is not a terminal
	UseTTY      bool         // Read from the controlling terminal instead of Input
	Logger      *slog.Logger // Debug log of failed attempts (nil discards)
}

// Option represents a configuration option for a Reader
type Option func(*Config)

// WithInput sets the stream lines are read from
func WithInput(in io.Reader) Option {
	return func(c *Config) {
		c.Input = in
	}
}

// WithOutput sets where prompts and notices are written
func WithOutput(out io.Writer) Option {
	return func(c *Config) {
		c.Output = out
	}
}

// WithPolicy sets the retry policy.
//
// Example:
//
//	paroot.New(paroot.WithPolicy(paroot.StopAtEOF(paroot.Bounded(3))))
func WithPolicy(policy RetryPolicy) Option {
	return func(c *Config) {
		c.Policy = policy
	}
}

// WithColorScheme colors the prompt and notices when the output is a terminal
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithForceColor applies the color scheme even when the output is not a terminal
func WithForceColor(force bool) Option {
	return func(c *Config) {
		c.ForceColor = force
	}
}

// WithTTY reads input from the controlling terminal, so prompts still work
// when standard input is redirected
func WithTTY() Option {
	return func(c *Config) {
		c.UseTTY = true
	}
}

// WithLogger sets the logger that receives debug records for failed attempts
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Reader prompts for typed values and retries until the input is valid.
//
// A Reader keeps its input stream for its whole life; every prompt call
// reads into its own line buffer and keeps no state between calls.
type Reader struct {
	input    lineSource
	output   io.Writer
	policy   RetryPolicy
	renderer *renderer
	logger   *slog.Logger
}

// New creates a Reader configured by options.
//
// Without options it reads from standard input, writes plain text to
// standard output and retries forever.
//
// Example:
//
//	r, err := paroot.New(paroot.WithColorScheme(paroot.ThemeDefault))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	age, err := r.GetInt("Age: ")
func New(options ...Option) (*Reader, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}
	return newFromConfig(config)
}

func newFromConfig(config Config) (*Reader, error) {
	if config.Input == nil {
		config.Input = os.Stdin
	}
	if config.Policy == nil {
		config.Policy = Unbounded()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var output io.Writer
	if config.Output == nil {
		output = stdout()
		if !config.ForceColor && !isTerminal(os.Stdout) {
			config.ColorScheme = nil
		}
	} else {
		output = config.Output
		if !config.ForceColor && !isTerminal(config.Output) {
			config.ColorScheme = nil
		}
	}

	var input lineSource
	if config.UseTTY {
		src, err := newTTYSource()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		input = src
	} else {
		input = newReaderSource(config.Input)
	}

	return &Reader{
		input:    input,
		output:   output,
		policy:   config.Policy,
		renderer: newRenderer(output, config.ColorScheme),
		logger:   config.Logger,
	}, nil
}

// Close releases the terminal opened by WithTTY. It is safe to call Close
// more than once; for other inputs it does nothing.
func (r *Reader) Close() error {
	if r.input == nil {
		return nil
	}
	return r.input.Close()
}

// GetChar prompts until the user enters a line of exactly one byte.
func (r *Reader) GetChar(prompt string) (byte, error) {
	return ask(r, prompt, ParseChar)
}

// GetInt prompts until the user enters a base-10 integer that fits in 32
// bits.
func (r *Reader) GetInt(prompt string) (int32, error) {
	return ask(r, prompt, ParseInt)
}

// GetLong prompts until the user enters a base-10 integer that fits in 64
// bits.
func (r *Reader) GetLong(prompt string) (int64, error) {
	return ask(r, prompt, ParseLong)
}

// GetFloat prompts until the user enters a number representable as float32.
func (r *Reader) GetFloat(prompt string) (float32, error) {
	return ask(r, prompt, ParseFloat)
}

// GetDouble prompts until the user enters a number representable as float64.
func (r *Reader) GetDouble(prompt string) (float64, error) {
	return ask(r, prompt, ParseDouble)
}

// GetString writes prompt and returns the next line verbatim.
//
// Any line is valid, including an empty one, so GetString never retries.
// End-of-stream returns the text read so far (possibly "") with a nil
// error; only a failing input stream returns ErrIO.
func (r *Reader) GetString(prompt string) (string, error) {
	r.show(r.renderer.renderPrompt(prompt))

	line, _, err := readLine(r.input)
	if err != nil {
		r.logger.Debug("prompt.read_failed", "error", err)
		return "", err
	}
	return line, nil
}

// ask runs the read-parse-retry loop shared by every typed prompt.
func ask[T any](r *Reader, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T

	r.show(r.renderer.renderPrompt(prompt))

	for attempt := 1; ; attempt++ {
		line, eof, err := readLine(r.input)
		if err != nil {
			if err := r.retry(Failure{Kind: IOFailure, Attempt: attempt, Err: err}, prompt); err != nil {
				return zero, err
			}
			continue
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		if err := r.retry(Failure{Kind: ParseInvalid, Attempt: attempt, Line: line, EOF: eof, Err: err}, prompt); err != nil {
			return zero, err
		}
	}
}

// retry asks the policy what to do after f and shows the matching notice.
// It returns a non-nil error only when the policy aborts.
func (r *Reader) retry(f Failure, prompt string) error {
	decision := r.policy.Next(f)

	switch decision {
	case Retry:
		r.logger.Debug("prompt.retry", "kind", f.Kind.String(), "attempt", f.Attempt, "eof", f.EOF)
		if f.Kind == IOFailure {
			r.show(r.renderer.renderReadError())
			r.show(r.renderer.renderPrompt(prompt))
		} else {
			r.show(r.renderer.renderRetry())
		}
		return nil
	case RetrySilently:
		r.logger.Debug("prompt.retry", "kind", f.Kind.String(), "attempt", f.Attempt, "eof", f.EOF, "silent", true)
		return nil
	default:
		r.logger.Debug("prompt.abort", "kind", f.Kind.String(), "attempt", f.Attempt, "eof", f.EOF, "error", f.Err)
		return &AttemptError{Failure: f}
	}
}

// show records a failed write. A broken output does not stop a prompt from
// reading input.
func (r *Reader) show(err error) {
	if err != nil {
		r.logger.Debug("prompt.write_failed", "error", err)
	}
}

var (
	stdOnce   sync.Once
	stdReader *Reader
)

// std returns the Reader behind the package-level functions: standard input,
// standard output and the Unbounded policy.
func std() *Reader {
	stdOnce.Do(func() {
		// Cannot fail: no terminal is opened without WithTTY.
		stdReader, _ = New()
	})
	return stdReader
}

// GetChar prompts on standard output until a single character is entered on
// standard input. It retries forever; see Unbounded.
func GetChar(prompt string) byte {
	v, _ := std().GetChar(prompt)
	return v
}

// GetInt prompts until a 32-bit base-10 integer is entered. It retries
// forever; see Unbounded.
func GetInt(prompt string) int32 {
	v, _ := std().GetInt(prompt)
	return v
}

// GetLong prompts until a 64-bit base-10 integer is entered. It retries
// forever; see Unbounded.
func GetLong(prompt string) int64 {
	v, _ := std().GetLong(prompt)
	return v
}

// GetFloat prompts until a float32 is entered. It retries forever; see
// Unbounded.
func GetFloat(prompt string) float32 {
	v, _ := std().GetFloat(prompt)
	return v
}

// GetDouble prompts until a float64 is entered. It retries forever; see
// Unbounded.
func GetDouble(prompt string) float64 {
	v, _ := std().GetDouble(prompt)
	return v
}

// GetString prompts once and returns the next line of standard input. The
// error is non-nil only when standard input cannot be read.
func GetString(prompt string) (string, error) {
	return std().GetString(prompt)
}
