package testutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	rng := NewRNG(4711)

	text := rng.Text(32, Mixed)

	assert.Equal(t, 32, utf8.RuneCountInString(text))
	for _, r := range text {
		assert.Contains(t, Mixed, r)
	}
}

func TestTextWithout(t *testing.T) {
	rng := NewRNG(4711)

	for range 50 {
		text := rng.TextWithout(64, ASCII, 'a', ' ')
		assert.NotContains(t, text, "a")
		assert.NotContains(t, text, " ")
	}

	require.Panics(t, func() {
		rng.TextWithout(4, []rune("ab"), 'a', 'b')
	})
}

func TestUint32s(t *testing.T) {
	rng := NewRNG(42)

	v := rng.Uint32s(8)

	assert.Len(t, v, 8)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	t1 := rng.Text(16, ASCII)

	rng.Reset()
	t2 := rng.Text(16, ASCII)

	assert.Equal(t, t1, t2)
	assert.Equal(t, int64(4711), rng.Seed())
}
