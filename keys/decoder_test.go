package keys

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, chunks ...string) []Event {
	t.Helper()
	var (
		d   Decoder
		src = NewScript(chunks...)
		out []Event
	)
	for {
		ev, err := d.Next(src)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, ev)
	}
}

func TestDecoder_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Event
	}{
		{name: "literal", input: "a", want: Literal('a')},
		{name: "control byte", input: "\x11", want: Literal(Ctrl('q'))},
		{name: "enter", input: "\r", want: Literal(Enter)},
		{name: "backspace", input: "\x7f", want: Literal(Backspace)},
		{name: "arrow up", input: "\x1b[A", want: Special(KeyUp)},
		{name: "arrow down", input: "\x1b[B", want: Special(KeyDown)},
		{name: "arrow right", input: "\x1b[C", want: Special(KeyRight)},
		{name: "arrow left", input: "\x1b[D", want: Special(KeyLeft)},
		{name: "csi home", input: "\x1b[H", want: Special(KeyHome)},
		{name: "csi end", input: "\x1b[F", want: Special(KeyEnd)},
		{name: "home 1~", input: "\x1b[1~", want: Special(KeyHome)},
		{name: "delete", input: "\x1b[3~", want: Special(KeyDelete)},
		{name: "end 4~", input: "\x1b[4~", want: Special(KeyEnd)},
		{name: "page up", input: "\x1b[5~", want: Special(KeyPageUp)},
		{name: "page down", input: "\x1b[6~", want: Special(KeyPageDown)},
		{name: "home 7~", input: "\x1b[7~", want: Special(KeyHome)},
		{name: "end 8~", input: "\x1b[8~", want: Special(KeyEnd)},
		{name: "ss3 home", input: "\x1bOH", want: Special(KeyHome)},
		{name: "ss3 end", input: "\x1bOF", want: Special(KeyEnd)},
		{name: "ss3 zero variant", input: "\x1b0H", want: Special(KeyHome)},
		{name: "ss3 arrow", input: "\x1bOA", want: Special(KeyUp)},
		{name: "unmapped csi", input: "\x1b[Z", want: Special(KeyEscape)},
		{name: "unmapped digit", input: "\x1b[2~", want: Special(KeyEscape)},
		{name: "digit without tilde", input: "\x1b[5x", want: Special(KeyEscape)},
		{name: "unmapped ss3", input: "\x1bOZ", want: Special(KeyEscape)},
		{name: "alt key", input: "\x1bx", want: Special(KeyEscape)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAll(t, tt.input)
			assert.Equal(t, []Event{tt.want}, got)
		})
	}
}

func TestDecoder_BareEscapeOnTimeout(t *testing.T) {
	got := decodeAll(t, "\x1b", "x")
	assert.Equal(t, []Event{Special(KeyEscape), Literal('x')}, got)

	got = decodeAll(t, "\x1b[", "A")
	assert.Equal(t, []Event{Special(KeyEscape), Literal('A')}, got)

	got = decodeAll(t, "\x1b[3", "~")
	assert.Equal(t, []Event{Special(KeyEscape), Literal('~')}, got)
}

func TestDecoder_Stream(t *testing.T) {
	got := decodeAll(t, "ab\x1b[Aq\x1b[3~\x1b[Zc")
	assert.Equal(t, []Event{
		Literal('a'),
		Literal('b'),
		Special(KeyUp),
		Literal('q'),
		Special(KeyDelete),
		Special(KeyEscape),
		Literal('c'),
	}, got)
}

func TestDecoder_PollNoInput(t *testing.T) {
	var d Decoder
	src := NewScript("", "a")

	_, ok, err := d.Poll(src)
	require.NoError(t, err)
	assert.False(t, ok)

	ev, ok, err := d.Poll(src)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Literal('a'), ev)
}

type faultySource struct{}

func (faultySource) PollByte() (byte, bool, error) {
	return 0, false, errors.New("read /dev/tty: input/output error")
}

func TestDecoder_ReadFault(t *testing.T) {
	var d Decoder
	_, err := d.Next(faultySource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input/output error")
}

func TestScript_Drained(t *testing.T) {
	assert.True(t, NewScript().Drained())

	src := NewScript("ab")
	assert.False(t, src.Drained())
	_, _, _ = src.PollByte()
	assert.False(t, src.Drained())
	_, _, _ = src.PollByte()
	assert.True(t, src.Drained(), "every byte read even before the trailing empty read")

	_, ok, err := src.PollByte()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, src.Drained())
}
