package main

import (
	"strings"
	"testing"

	"github.com/kalexmills/pronouncing/src/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSyllables(t *testing.T) {
	entries, err := dict.Parse(strings.NewReader(`;;; comment
MEDIEVAL  M IH0 D IY1 V AH0 L
MEDIEVAL(1)  M IY2 D IY0 IY1 V AH0 L
MEDIEVAL(2)  M IH0 D IY1 IY0 V AH0 L
ABOVE  AH0 B AH1 V
PERMIT  P ER0 M IH1 T
PERMIT(1)  P ER1 M IH2 T
`))
	require.NoError(t, err)

	assert.Equal(t, []wordCounts{
		{word: "above", counts: []int{2}},
		{word: "medieval", counts: []int{3, 4}},
		{word: "permit", counts: []int{2}},
	}, countSyllables(entries))
}
