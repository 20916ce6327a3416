package pronouncing

import "github.com/kalexmills/pronouncing/src/dict"

// Index holds the lookup tables derived from a dictionary's entries.
type Index struct {
	// Words maps a normalized word to its phone strings in dictionary order.
	Words map[string][]string
	// Rhymes maps a rhyming part to every word whose pronunciation ends in it, in dictionary
	// order. A word listed twice in the dictionary with the same rhyming part appears twice.
	Rhymes map[string][]string
	// order lists each distinct word once, by first appearance.
	order []string
}

// BuildIndex indexes entries in a single pass. Entries whose rhyming part has no stressed
// vowel are left out of Rhymes.
func BuildIndex(entries []dict.Entry) *Index {
	idx := &Index{
		Words:  make(map[string][]string),
		Rhymes: make(map[string][]string),
	}
	for _, e := range entries {
		if _, ok := idx.Words[e.Word]; !ok {
			idx.order = append(idx.order, e.Word)
		}
		idx.Words[e.Word] = append(idx.Words[e.Word], e.Phones)

		part := RhymingPart(e.Phones)
		if part == "" || !hasStress(part) {
			continue
		}
		idx.Rhymes[part] = append(idx.Rhymes[part], e.Word)
	}
	return idx
}
