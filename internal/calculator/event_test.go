package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Event
	}{
		{"0", DigitEvent(0)},
		{"9", DigitEvent(9)},
		{"+", OperatorEvent(Add)},
		{"-", OperatorEvent(Subtract)},
		{"*", OperatorEvent(Multiply)},
		{"x", OperatorEvent(Multiply)},
		{"×", OperatorEvent(Multiply)},
		{"/", OperatorEvent(Divide)},
		{"÷", OperatorEvent(Divide)},
		{"=", EqualsEvent()},
		{"Return", EqualsEvent()},
		{"Enter", EqualsEvent()},
		{"C", ClearEvent()},
		{"Escape", ClearEvent()},
		{"Del", DeleteEvent()},
		{"BackSpace", DeleteEvent()},
	}

	for _, tt := range tests {
		got, ok := ParseKey(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}

	for _, key := range []string{"", "10", "%", "q", "Tab"} {
		_, ok := ParseKey(key)
		assert.False(t, ok, key)
	}
}

func TestParseScript(t *testing.T) {
	packed, err := ParseScript("5+3*2=")
	require.NoError(t, err)

	spaced, err := ParseScript("5 + 3 × 2 Enter")
	require.NoError(t, err)

	want := []Event{
		DigitEvent(5), OperatorEvent(Add), DigitEvent(3),
		OperatorEvent(Multiply), DigitEvent(2), EqualsEvent(),
	}
	assert.Equal(t, want, packed)
	assert.Equal(t, want, spaced)

	named, err := ParseScript("12 Del 4 C")
	require.NoError(t, err)
	assert.Equal(t, []Event{DigitEvent(1), DigitEvent(2), DeleteEvent(), DigitEvent(4), ClearEvent()}, named)

	empty, err := ParseScript("   ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseScriptUnknownKey(t *testing.T) {
	_, err := ParseScript("5 + 3%")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "%", perr.Token)
	assert.Equal(t, 5, perr.Position)
}

func TestEventLabels(t *testing.T) {
	assert.Equal(t, "7", DigitEvent(7).Label())
	assert.Equal(t, "÷", OperatorEvent(Divide).Label())
	assert.Equal(t, "=", EqualsEvent().Label())
	assert.Equal(t, "C", ClearEvent().Label())
	assert.Equal(t, "Del", DeleteEvent().Label())
	assert.Equal(t, "operator(×)", OperatorEvent(Multiply).String())
}

func TestOperatorClasses(t *testing.T) {
	for _, op := range Operators() {
		assert.NotEqual(t, op.IsAdditive(), op.IsMultiplicative(), op.String())
	}
	assert.False(t, NoOperator.IsAdditive())
	assert.False(t, NoOperator.IsMultiplicative())
	assert.Equal(t, "none", NoOperator.String())
}
