package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{spec: "a", want: Literal('a')},
		{spec: "Q", want: Literal('Q')},
		{spec: "ctrl-q", want: Literal(Ctrl('q'))},
		{spec: "Ctrl+S", want: Literal(Ctrl('s'))},
		{spec: "C-f", want: Literal(Ctrl('f'))},
		{spec: "<C-l>", want: Literal(Ctrl('l'))},
		{spec: "<CR>", want: Literal(Enter)},
		{spec: "enter", want: Literal(Enter)},
		{spec: "backspace", want: Literal(Backspace)},
		{spec: "tab", want: Literal(Tab)},
		{spec: "space", want: Literal(' ')},
		{spec: "escape", want: Special(KeyEscape)},
		{spec: "Up", want: Special(KeyUp)},
		{spec: "pgdn", want: Special(KeyPageDown)},
		{spec: " delete ", want: Special(KeyDelete)},
		{spec: "<", want: Literal('<')},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("  ")
	assert.ErrorIs(t, err, ErrEmptySpec)

	for _, spec := range []string{"hyper-x", "ctrl-", "ctrl-ab", "ctrl-1", "f13"} {
		_, err := Parse(spec)
		assert.ErrorIs(t, err, ErrInvalidSpec, spec)
	}
}

func TestEventString_RoundTrip(t *testing.T) {
	events := []Event{
		Literal('a'),
		Literal(Ctrl('q')),
		Literal(Ctrl('h')),
		Literal(Ctrl('@')),
		Literal(Ctrl('\\')),
		Literal(Ctrl(']')),
		Literal(Enter),
		Literal(Tab),
		Literal(Backspace),
		Literal(' '),
		Special(KeyUp),
		Special(KeyPageDown),
		Special(KeyDelete),
		Special(KeyEscape),
	}

	for _, ev := range events {
		t.Run(ev.String(), func(t *testing.T) {
			got, err := Parse(ev.String())
			require.NoError(t, err)
			assert.Equal(t, ev, got)
		})
	}
}

func TestEvent_IsPrintable(t *testing.T) {
	assert.True(t, Literal('a').IsPrintable())
	assert.True(t, Literal(' ').IsPrintable())
	assert.False(t, Literal(Tab).IsPrintable())
	assert.False(t, Literal(Backspace).IsPrintable())
	assert.False(t, Special(KeyUp).IsPrintable())
}
