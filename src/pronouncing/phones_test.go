package pronouncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStresses(t *testing.T) {
	assert.Equal(t, "01", Stresses("P ER0 M IH1 T"))
	assert.Equal(t, "12", Stresses("P ER1 M IH2 T"))
	assert.Equal(t, "", Stresses("S K"))
	assert.Equal(t, "", Stresses(""))
}

func TestSyllableCount(t *testing.T) {
	tests := []struct {
		phones string
		count  int
	}{
		{"CH IY1 Z", 1},
		{"CH EH1 D ER0", 2},
		{"AE1 F T ER0 W ER0 D", 3},
		{"IH2 N T ER0 M IH1 T AH0 N T", 4},
		{"IH2 N T ER0 M IH1 T AH0 N T L IY0", 5},
		{"P ER0 M IH1 T", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.count, SyllableCount(tt.phones), tt.phones)
		assert.Len(t, Stresses(tt.phones), SyllableCount(tt.phones), tt.phones)
	}
}

func TestRhymingPart(t *testing.T) {
	tests := []struct {
		phones string
		part   string
	}{
		{"S L IY1 P ER0", "IY1 P ER0"},
		{"S L IY1 P AH0 L IY0", "IY1 P AH0 L IY0"},
		{"M ER0 M AE0 N S K", "M ER0 M AE0 N S K"},
		{"P ER1 M IH2 T", "IH2 T"},
		{"AE2 D AH0 L EH1 S AH0 N T", "EH1 S AH0 N T"},
		// the first phone is never a split point
		{"AH1 V", "AH1 V"},
		{"AO1 R AH0 N JH", "AO1 R AH0 N JH"},
		{"EY1", "EY1"},
		{"AH0", "AH0"},
		// unchanged input keeps its spacing; a split rejoins with single spaces
		{"AO1  R", "AO1  R"},
		{"S  P EY1   S T", "EY1 S T"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.part, RhymingPart(tt.phones), tt.phones)
	}
}
