package calculator

import (
	"math"
	"strconv"
	"unicode/utf8"
)

const (
	// DefaultMaxLength is the width of the calculator display in characters.
	DefaultMaxLength = 15
	// MinDisplayLength is the narrowest display every float64 result fits
	// in without losing its magnitude, e.g. "-1e-308".
	MinDisplayLength = 7
)

// Display is the single-line text field the user reads. Like a bounded
// line edit it silently drops text beyond MaxLength.
type Display struct {
	text      string
	maxLength int
}

// NewDisplay creates a display showing "0". A non-positive maxLength
// disables truncation; positive widths are raised to MinDisplayLength.
func NewDisplay(maxLength int) *Display {
	if maxLength > 0 && maxLength < MinDisplayLength {
		maxLength = MinDisplayLength
	}
	return &Display{text: "0", maxLength: maxLength}
}

// Text returns the displayed string.
func (d *Display) Text() string {
	return d.text
}

// MaxLength returns the configured width.
func (d *Display) MaxLength() int {
	return d.maxLength
}

// SetText replaces the display contents, truncating to MaxLength.
func (d *Display) SetText(text string) {
	d.text = d.truncate(text)
}

// Append adds text at the end of the display, truncating to MaxLength.
func (d *Display) Append(text string) {
	d.SetText(d.text + text)
}

// Clear empties the display.
func (d *Display) Clear() {
	d.text = ""
}

// Backspace removes the last character.
func (d *Display) Backspace() {
	if d.text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(d.text)
	d.text = d.text[:len(d.text)-size]
}

// Value parses the displayed text as a number. Text that does not parse
// (only possible for an empty display) reads as zero.
func (d *Display) Value() float64 {
	v, err := strconv.ParseFloat(d.text, 64)
	if err != nil {
		return 0
	}
	return v
}

// SetValue shows v formatted to fit the display width.
func (d *Display) SetValue(v float64) {
	d.SetText(FormatNumber(v, d.maxLength))
}

func (d *Display) truncate(text string) string {
	if d.maxLength <= 0 || utf8.RuneCountInString(text) <= d.maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:d.maxLength])
}

// FormatNumber renders v as the shortest decimal that round-trips. Values
// with magnitude in [1e-6, 1e15) use plain notation, others use exponent
// notation. When width > 0 significant digits are dropped until the result
// fits in width characters.
func FormatNumber(v float64, width int) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	abs := math.Abs(v)
	var s string
	if abs >= 1e-6 && abs < 1e15 {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if width <= 0 || len(s) <= width {
		return s
	}

	for prec := 15; prec > 0; prec-- {
		s = strconv.FormatFloat(v, 'g', prec, 64)
		if len(s) <= width {
			return s
		}
	}
	return s
}
