package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	b := fromString(t, "foo\nbar\n\tfoo bar\nbaz\n")

	m, ok := b.Find([]byte("foo"), -1, true)
	assert.True(t, ok)
	assert.Equal(t, Match{X: 0, Y: 0}, m)

	m, ok = b.Find([]byte("foo"), m.Y, true)
	assert.True(t, ok)
	assert.Equal(t, Match{X: 1, Y: 2}, m, "render column 4 maps back past the tab")

	m, ok = b.Find([]byte("foo"), m.Y, true)
	assert.True(t, ok)
	assert.Equal(t, Match{X: 0, Y: 0}, m, "search wraps around")

	m, ok = b.Find([]byte("foo"), m.Y, false)
	assert.True(t, ok)
	assert.Equal(t, Match{X: 1, Y: 2}, m, "backwards wraps to the end")
}

func TestFind_Backward(t *testing.T) {
	b := fromString(t, "bar\nbar\nfoo\n")

	m, ok := b.Find([]byte("bar"), -1, false)
	assert.True(t, ok)
	assert.Equal(t, 1, m.Y)

	m, ok = b.Find([]byte("bar"), m.Y, false)
	assert.True(t, ok)
	assert.Equal(t, 0, m.Y)
}

func TestFind_NoMatch(t *testing.T) {
	b := fromString(t, "foo\n")

	_, ok := b.Find([]byte("zzz"), -1, true)
	assert.False(t, ok)

	_, ok = b.Find(nil, -1, true)
	assert.False(t, ok)

	_, ok = New(4).Find([]byte("a"), -1, true)
	assert.False(t, ok)
}
