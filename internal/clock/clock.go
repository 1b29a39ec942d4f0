// Package clock formats the date/time status line.
package clock

import "time"

const (
	// DefaultDateLayout is the long date form, e.g. "Monday, October 19, 2026".
	DefaultDateLayout = "Monday, January 2, 2006"
	// DefaultTimeLayout is a 24 hour clock with seconds.
	DefaultTimeLayout = "15:04:05"
)

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Useful in tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Format holds the layouts used to render a status line.
type Format struct {
	DateLayout string
	TimeLayout string
}

// DefaultFormat returns the long date plus HH:MM:SS format.
func DefaultFormat() Format {
	return Format{DateLayout: DefaultDateLayout, TimeLayout: DefaultTimeLayout}
}

// StatusLine renders t as "<date> <time>". Empty layouts fall back to the
// defaults.
func (f Format) StatusLine(t time.Time) string {
	dateLayout := f.DateLayout
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	timeLayout := f.TimeLayout
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	return t.Format(dateLayout) + " " + t.Format(timeLayout)
}

// StatusLine reads c once and renders it with the default format.
func StatusLine(c Clock) string {
	return DefaultFormat().StatusLine(c.Now())
}
