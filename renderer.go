package paroot

import (
	"fmt"
	"io"
)

// Fixed notices written between attempts.
const (
	retryNotice     = "Retry: "
	readErrorNotice = "Error reading input. Try again."
)

// renderer writes everything a Reader shows the user.
//
// Output is byte-exact plain text unless a color scheme is active, in which
// case the prompt and the notices are wrapped in ANSI color sequences. The
// line terminator after the error notice is always written uncolored.
type renderer struct {
	output      io.Writer    // Target output writer (stdout or colorable wrapper)
	colorScheme *ColorScheme // nil disables colors
}

func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// renderPrompt writes the caller's prompt. An empty prompt writes nothing.
func (r *renderer) renderPrompt(prompt string) error {
	if prompt == "" {
		return nil
	}
	return r.write(prompt, r.color(func(cs *ColorScheme) Color { return cs.Prompt }))
}

// renderRetry writes the notice shown after an invalid line.
func (r *renderer) renderRetry() error {
	return r.write(retryNotice, r.color(func(cs *ColorScheme) Color { return cs.Retry }))
}

// renderReadError writes the notice shown after an input failure.
func (r *renderer) renderReadError() error {
	if err := r.write(readErrorNotice, r.color(func(cs *ColorScheme) Color { return cs.Error })); err != nil {
		return err
	}
	_, err := fmt.Fprint(r.output, "\n")
	return err
}

// renderLine writes s followed by a line terminator, uncolored.
func (r *renderer) renderLine(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func (r *renderer) color(pick func(*ColorScheme) Color) *Color {
	if r.colorScheme == nil {
		return nil
	}
	c := pick(r.colorScheme)
	return &c
}

func (r *renderer) write(text string, c *Color) error {
	if c == nil {
		_, err := fmt.Fprint(r.output, text)
		return err
	}
	_, err := fmt.Fprint(r.output, c.ToANSI(), text, Reset())
	return err
}
