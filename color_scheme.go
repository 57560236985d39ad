package paroot

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used for prompts and notices.
type ColorScheme struct {
	Name   string `json:"name"`
	Prompt Color  `json:"prompt"` // Caller-supplied prompt text
	Retry  Color  `json:"retry"`  // "Retry: " notice
	Error  Color  `json:"error"`  // Input error notice
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is a green prompt with yellow retry and red error notices
var ThemeDefault = &ColorScheme{
	Name:   "default",
	Prompt: Color{R: 0, G: 255, B: 0, Bold: true},
	Retry:  Color{R: 255, G: 255, B: 0, Bold: false},
	Error:  Color{R: 255, G: 0, B: 0, Bold: true},
}

// ThemeDark suits dark terminal backgrounds
var ThemeDark = &ColorScheme{
	Name:   "Dark",
	Prompt: Color{R: 102, G: 217, B: 239, Bold: true},
	Retry:  Color{R: 255, G: 184, B: 108, Bold: false},
	Error:  Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeLight suits light terminal backgrounds
var ThemeLight = &ColorScheme{
	Name:   "Light",
	Prompt: Color{R: 0, G: 119, B: 187, Bold: true},
	Retry:  Color{R: 176, G: 96, B: 0, Bold: false},
	Error:  Color{R: 215, G: 58, B: 73, Bold: true},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:   "Accessible",
	Prompt: Color{R: 0, G: 114, B: 178, Bold: true},
	Retry:  Color{R: 240, G: 228, B: 66, Bold: true},
	Error:  Color{R: 230, G: 159, B: 0, Bold: true},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
