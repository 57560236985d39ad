package paroot

import (
	"strconv"
	"strings"
)

// formatArray renders values as "[v0, v1, ..., vn-1]" using format for
// each element.
func formatArray[T any](values []T, format func(T) string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(format(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// formatFloat32 widens to float64 first, as C's printf does with "%.2f".
func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 64)
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatArrayInt returns values as "[1, 2, 3]". An empty slice is "[]".
func FormatArrayInt(values []int32) string {
	return formatArray(values, formatInt)
}

// FormatArrayFloat returns values with two decimals each, e.g. "[1.50, -2.00]".
func FormatArrayFloat(values []float32) string {
	return formatArray(values, formatFloat32)
}

// FormatArrayDouble returns values with two decimals each, e.g. "[1.50, -2.00]".
func FormatArrayDouble(values []float64) string {
	return formatArray(values, formatFloat64)
}

// PrintArrayInt writes FormatArrayInt(values) and a newline to the Reader's
// output.
func (r *Reader) PrintArrayInt(values []int32) error {
	return r.renderer.renderLine(FormatArrayInt(values))
}

// PrintArrayFloat writes FormatArrayFloat(values) and a newline to the
// Reader's output.
func (r *Reader) PrintArrayFloat(values []float32) error {
	return r.renderer.renderLine(FormatArrayFloat(values))
}

// PrintArrayDouble writes FormatArrayDouble(values) and a newline to the
// Reader's output.
func (r *Reader) PrintArrayDouble(values []float64) error {
	return r.renderer.renderLine(FormatArrayDouble(values))
}

// PrintArrayInt prints values to standard output, e.g. "[1, 2, 3]".
func PrintArrayInt(values []int32) {
	_ = std().PrintArrayInt(values)
}

// PrintArrayFloat prints values to standard output with two decimals each.
func PrintArrayFloat(values []float32) {
	_ = std().PrintArrayFloat(values)
}

// PrintArrayDouble prints values to standard output with two decimals each.
func PrintArrayDouble(values []float64) {
	_ = std().PrintArrayDouble(values)
}
