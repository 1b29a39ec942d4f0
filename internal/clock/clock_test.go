package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	at := time.Date(2026, time.October, 19, 9, 5, 3, 0, time.UTC)

	assert.Equal(t, "Monday, October 19, 2026 09:05:03", StatusLine(Fixed(at)))

	f := Format{DateLayout: "2006-01-02"}
	assert.Equal(t, "2026-10-19 09:05:03", f.StatusLine(at))

	f = Format{TimeLayout: "3:04 PM"}
	assert.Equal(t, "Monday, October 19, 2026 9:05 AM", f.StatusLine(at))
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := SystemClock{}.Now()
	assert.False(t, now.Before(before))
}
