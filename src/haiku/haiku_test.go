package haiku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHaiku(t *testing.T) {
	c := newTestCounter(t)

	haikus := []string{
		"an old silent pond\na frog jumps into the pond\nsplash! silence again.",
		"An old silent pond...\nA frog jumps into the pond,\nSplash! Silence again.",
		"\n\nan old silent pond :frog:\na frog jumps into the pond\nsplash silence again\n",
		"an old silent pond\na frog jumps into the pond\nsplash, splash, splash, splash, splash",
	}

	notHaikus := []struct {
		text string
		msg  string
	}{
		{"an old pond\na frog jumps into the pond\nsplash silence again", "line 1 has 3 syllables, expected 5"},
		{"an old silent pond\na frog jumps\nsplash silence again", "line 2 has 3 syllables, expected 7"},
		{"an old silent pond\na frog jumps into the pond", "a haiku has 3 lines, found 2"},
		{"an old silent xyzzyq\na frog jumps into the pond\nsplash silence again", "line 1: unknown word xyzzyq"},
		{"an old silent pond 3\na frog jumps into the pond\nsplash silence again", "line 1: unknown word 3"},
	}

	for _, haiku := range haikus {
		assert.NoError(t, c.IsHaiku(haiku), haiku)
	}
	for _, tt := range notHaikus {
		err := c.IsHaiku(tt.text)
		if assert.Error(t, err, tt.text) {
			assert.Equal(t, tt.msg, err.Error(), tt.text)
		}
	}
}
