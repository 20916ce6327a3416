package pronouncing

import "strings"

// Stresses returns only the stress digits of a phone string, in order.
//
//	Stresses("P ER0 M IH1 T") == "01"
func Stresses(phones string) string {
	var b strings.Builder
	for i := 0; i < len(phones); i++ {
		if c := phones[i]; c == '0' || c == '1' || c == '2' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SyllableCount is the number of vowels in a phone string. Every vowel carries exactly one
// stress digit and consonants carry none.
func SyllableCount(phones string) int {
	return len(Stresses(phones))
}

// RhymingPart returns the phones from the last vowel with primary or secondary stress to the
// end of the word. The first phone is never a split point; if no later phone qualifies the
// input is returned unchanged.
//
//	RhymingPart("S L IY1 P ER0") == "IY1 P ER0"
func RhymingPart(phones string) string {
	tokens := strings.Fields(phones)
	for i := len(tokens) - 1; i >= 1; i-- {
		if isStressed(tokens[i]) {
			return strings.Join(tokens[i:], " ")
		}
	}
	return phones
}

// isStressed reports whether a phone carries primary or secondary stress.
func isStressed(phone string) bool {
	last := phone[len(phone)-1]
	return last == '1' || last == '2'
}

// hasStress reports whether any phone in phones carries primary or secondary stress.
func hasStress(phones string) bool {
	for _, phone := range strings.Fields(phones) {
		if isStressed(phone) {
			return true
		}
	}
	return false
}
